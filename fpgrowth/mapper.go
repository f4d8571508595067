package fpgrowth

import (
	"sync"

	"fpm-shenglin/utils"
)

// ItemMapper 原始项和内部编号的双向映射,编号按首次出现顺序从0递增
// 挖掘内部全程用编号,输出时再映射回原始项
type ItemMapper[T comparable] struct {
	mu     sync.RWMutex
	idOf   map[T]int
	itemOf []T
}

func NewItemMapper[T comparable]() *ItemMapper[T] {
	return &ItemMapper[T]{
		idOf: make(map[T]int),
	}
}

// Register 注册一个项,已注册的直接返回原编号
func (m *ItemMapper[T]) Register(item T) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.idOf[item]; ok {
		return id
	}
	id := len(m.itemOf)
	m.idOf[item] = id
	m.itemOf = append(m.itemOf, item)
	return id
}

func (m *ItemMapper[T]) IdOf(item T) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.idOf[item]
	return id, ok
}

// ItemOf 编号换回原始项,未注册的编号是逻辑错误,直接报错
func (m *ItemMapper[T]) ItemOf(id int) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 0 || id >= len(m.itemOf) {
		var zero T
		return zero, utils.UnmappedItemErrorf(id)
	}
	return m.itemOf[id], nil
}

func (m *ItemMapper[T]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.itemOf)
}

// Snapshot 当前映射的一份只读副本,发给并发环节用,后续注册不影响副本
func (m *ItemMapper[T]) Snapshot() *ItemMapper[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := &ItemMapper[T]{
		idOf:   make(map[T]int, len(m.idOf)),
		itemOf: make([]T, len(m.itemOf)),
	}
	for item, id := range m.idOf {
		cp.idOf[item] = id
	}
	copy(cp.itemOf, m.itemOf)
	return cp
}
