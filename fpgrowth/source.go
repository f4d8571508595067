package fpgrowth

// RewindableSource 可重放的事务数据源,Each每次调用都从头完整遍历一遍
// 两趟挖掘要求同一数据源能被连续遍历两次,两次看到的内容需要一致
type RewindableSource[T comparable] interface {
	Each(fn func(tx []T) error) error
}

// SliceSource 内存里的事务集合,测试和小数据量场景用
type SliceSource[T comparable] [][]T

func (s SliceSource[T]) Each(fn func(tx []T) error) error {
	for _, tx := range s {
		if err := fn(tx); err != nil {
			return err
		}
	}
	return nil
}
