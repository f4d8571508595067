package fpgrowth

import (
	"math"

	"fpm-shenglin/fpm_config"
	"fpm-shenglin/rock-share/base/logger"
	"fpm-shenglin/rock-share/global/model/fpm"
	"fpm-shenglin/utils"

	"golang.org/x/exp/slices"
)

// Engine 频繁项集挖掘入口,一个Engine对应一次挖掘任务的参数和项映射
type Engine[T comparable] struct {
	minSupport float64
	workerNum  int
	mapper     *ItemMapper[T]
}

// NewEngine 支持度大于等于1按绝对计数解释,小于1按事务占比解释
func NewEngine[T comparable](minSupport float64, workerNum int) (*Engine[T], error) {
	if minSupport <= 0 {
		return nil, utils.ParamErrorf("support must be positive, got %v", minSupport)
	}
	if workerNum < 1 {
		return nil, utils.ParamErrorf("worker num must be at least 1, got %v", workerNum)
	}
	if workerNum > fpm_config.MAXCpuNum {
		logger.Warnf("worker数:%v超出上限,按%v执行", workerNum, fpm_config.MAXCpuNum)
		workerNum = fpm_config.MAXCpuNum
	}
	return &Engine[T]{
		minSupport: minSupport,
		workerNum:  workerNum,
		mapper:     NewItemMapper[T](),
	}, nil
}

// Mapper 项映射,挖掘完后把编号换回原始项时用
func (e *Engine[T]) Mapper() *ItemMapper[T] {
	return e.mapper
}

// Mine 两趟遍历数据源,返回全部频繁项集和事务总数
// 第一趟统计单项支持度并注册项编号,第二趟过滤排序后建树,然后在树上递归挖掘
func (e *Engine[T]) Mine(source RewindableSource[T]) (fpm.ItemsetMap, int, error) {
	freq := make(map[int]int)
	txCount := 0
	err := source.Each(func(tx []T) error {
		if len(tx) == 0 {
			return nil
		}
		txCount++
		for _, item := range tx {
			freq[e.mapper.Register(item)]++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if txCount == 0 {
		return fpm.ItemsetMap{}, 0, nil
	}

	minCount := absoluteMinSupport(e.minSupport, txCount)
	frequent := make(map[int]int, len(freq))
	for item, cnt := range freq {
		if cnt >= minCount {
			frequent[item] = cnt
		}
	}
	logger.Infof("第一趟扫描完成,事务数:%v,项数:%v,频繁项数:%v,最小支持计数:%v", txCount, len(freq), len(frequent), minCount)
	if len(frequent) == 0 {
		return fpm.ItemsetMap{}, txCount, nil
	}

	tree := NewFPTree(frequent)
	err = source.Each(func(tx []T) error {
		ids := e.projectTx(tx, frequent)
		if len(ids) > 0 {
			tree.Insert(ids, 1)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	logger.Infof("第二趟扫描完成,树节点数:%v", tree.NodeNum())
	if fpm_config.EnableDotExport && logger.DebugEnabled() && tree.NodeNum() <= fpm_config.DotExportSize {
		logger.Debugf("FP树:\n%v", tree.ToSimpleGraph())
	}

	if e.workerNum > 1 {
		result, err := mineParallel(tree, minCount, e.workerNum, e.mapper.Snapshot())
		if err != nil {
			return nil, 0, err
		}
		return result, txCount, nil
	}
	result := make(fpm.ItemsetMap)
	mineTree(tree, nil, minCount, result)
	return result, txCount, nil
}

// MineFromCollection 直接从内存事务集合挖掘
func (e *Engine[T]) MineFromCollection(txs [][]T) (fpm.ItemsetMap, int, error) {
	return e.Mine(SliceSource[T](txs))
}

// projectTx 事务过滤掉非频繁项并去重,按支持度降序排序,同支持度按编号升序
func (e *Engine[T]) projectTx(tx []T, frequent map[int]int) []int {
	ids := make([]int, 0, len(tx))
	seen := make(map[int]bool, len(tx))
	for _, item := range tx {
		id, ok := e.mapper.IdOf(item)
		if !ok {
			continue
		}
		if _, ok := frequent[id]; !ok {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b int) bool {
		fa, fb := frequent[a], frequent[b]
		if fa != fb {
			return fa > fb
		}
		return a < b
	})
	return ids
}

// absoluteMinSupport 把支持度参数换算成绝对计数,占比形式向上取整,至少为1
func absoluteMinSupport(minSupport float64, txCount int) int {
	if minSupport >= fpm_config.AbsoluteSupportBound {
		return int(minSupport)
	}
	cnt := int(math.Ceil(minSupport * float64(txCount)))
	return utils.Max(cnt, 1)
}

// mineTree 在一棵(条件)树上递归挖掘,prefix是到这棵树为止已确定的项
func mineTree(tree *FPTree, prefix []int, minCount int, out fpm.ItemsetMap) {
	if tree.IsSinglePath() {
		enumerateSinglePath(tree, prefix, out)
		return
	}
	for _, item := range tree.ItemsAscending() {
		support := tree.Support(item)
		if support < minCount {
			continue
		}
		cur := make([]int, len(prefix)+1)
		copy(cur, prefix)
		cur[len(prefix)] = item
		record(out, cur, support)

		paths := tree.FindPaths(item)
		condFreq := pathFrequencies(paths, minCount)
		if len(condFreq) == 0 {
			continue
		}
		mineTree(buildConditionalTree(paths, condFreq), cur, minCount, out)
	}
}

// enumerateSinglePath 单路径上节点的任意组合都是频繁的,不用再递归
// 组合的支持度取组合里计数最小的节点,也就是最深的那个
func enumerateSinglePath(tree *FPTree, prefix []int, out fpm.ItemsetMap) {
	nodes := tree.SinglePathNodes()
	if len(nodes) == 0 {
		return
	}
	for mask := 1; mask < 1<<uint(len(nodes)); mask++ {
		support := math.MaxInt
		items := make([]int, 0, len(prefix)+len(nodes))
		items = append(items, prefix...)
		for i := range nodes {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			items = append(items, nodes[i].item)
			support = utils.Min(support, nodes[i].count)
		}
		record(out, items, support)
	}
}

// pathFrequencies 条件模式基里各项的支持计数,低于minCount的直接剔除
func pathFrequencies(paths []patternPath, minCount int) map[int]int {
	freq := make(map[int]int)
	for _, p := range paths {
		for _, item := range p.items {
			freq[item] += p.weight
		}
	}
	for item, cnt := range freq {
		if cnt < minCount {
			delete(freq, item)
		}
	}
	return freq
}

// buildConditionalTree 用条件模式基建条件树,路径内的项按条件频次重新排序
func buildConditionalTree(paths []patternPath, condFreq map[int]int) *FPTree {
	tree := NewFPTree(condFreq)
	for _, p := range paths {
		items := make([]int, 0, len(p.items))
		for _, item := range p.items {
			if _, ok := condFreq[item]; ok {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		slices.SortFunc(items, func(a, b int) bool {
			fa, fb := condFreq[a], condFreq[b]
			if fa != fb {
				return fa > fb
			}
			return a < b
		})
		tree.Insert(items, p.weight)
	}
	return tree
}

// record 项集统一按编号升序存,键由内容决定,和挖掘顺序无关
func record(out fpm.ItemsetMap, items []int, support int) {
	sorted := utils.SortedCopy(items)
	out[fpm.Key(sorted)] = fpm.Itemset{Items: sorted, Support: support}
}
