package fpgrowth

import (
	"fpm-shenglin/rock-share/global/model/fpm"

	"github.com/yourbasic/bit"
	"golang.org/x/exp/slices"
)

const nilIndex = -1

// fpNode 节点全部放在一个切片里,parent/next存的都是切片下标,省掉大量小对象
type fpNode struct {
	item     int
	count    int
	parent   int
	next     int // 同一项的下一个节点,串成链表
	children map[int]int
}

// headerEntry 项头表里一项的入口,head/tail是该项节点链表的首尾
type headerEntry struct {
	support int
	head    int
	tail    int
}

// FPTree 前缀树,根节点固定在下标0,item为-1
type FPTree struct {
	nodes  []fpNode
	header map[int]*headerEntry
	items  *bit.Set
}

// NewFPTree 按给定的频繁项表建树,只有表里的项会被插入
func NewFPTree(freq map[int]int) *FPTree {
	t := &FPTree{
		nodes:  make([]fpNode, 1, 64),
		header: make(map[int]*headerEntry, len(freq)),
		items:  bit.New(),
	}
	t.nodes[0] = fpNode{item: -1, parent: nilIndex, next: nilIndex}
	for item := range freq {
		t.header[item] = &headerEntry{head: nilIndex, tail: nilIndex}
		t.items.Add(item)
	}
	return t
}

// Insert 插入一条已经过滤排序好的事务,weight是这条路径的权重
func (t *FPTree) Insert(tx []int, weight int) {
	cur := 0
	for _, item := range tx {
		if !t.items.Contains(item) {
			continue
		}
		entry := t.header[item]
		child, ok := t.nodes[cur].children[item]
		if !ok {
			child = len(t.nodes)
			t.nodes = append(t.nodes, fpNode{item: item, parent: cur, next: nilIndex})
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[int]int, 2)
			}
			t.nodes[cur].children[item] = child
			// 尾插,链表顺序和插入顺序保持一致
			if entry.tail == nilIndex {
				entry.head = child
			} else {
				t.nodes[entry.tail].next = child
			}
			entry.tail = child
		}
		t.nodes[child].count += weight
		entry.support += weight
		cur = child
	}
}

// HasItem 建树时是否注册过这个项
func (t *FPTree) HasItem(item int) bool {
	return t.items.Contains(item)
}

// Support 一个项在树里的总支持计数
func (t *FPTree) Support(item int) int {
	if entry, ok := t.header[item]; ok {
		return entry.support
	}
	return 0
}

func (t *FPTree) NodeNum() int {
	return len(t.nodes) - 1
}

// ItemsAscending 项按支持度升序排列,同支持度按编号升序,挖掘按这个顺序走
func (t *FPTree) ItemsAscending() []int {
	items := make([]int, 0, len(t.header))
	for item, entry := range t.header {
		if entry.support > 0 {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b int) bool {
		sa, sb := t.header[a].support, t.header[b].support
		if sa != sb {
			return sa < sb
		}
		return a < b
	})
	return items
}

// patternPath 条件模式基里的一条前缀路径,items按根到叶排列,不含基项本身
type patternPath struct {
	items  []int
	weight int
}

// FindPaths 收集一个项的条件模式基,内容相同的路径合并权重
func (t *FPTree) FindPaths(item int) []patternPath {
	if !t.items.Contains(item) {
		return nil
	}
	entry := t.header[item]
	index := make(map[string]int)
	var paths []patternPath
	for n := entry.head; n != nilIndex; n = t.nodes[n].next {
		weight := t.nodes[n].count
		var rev []int
		for p := t.nodes[n].parent; p > 0; p = t.nodes[p].parent {
			rev = append(rev, t.nodes[p].item)
		}
		if len(rev) == 0 {
			continue
		}
		items := make([]int, len(rev))
		for i := range rev {
			items[i] = rev[len(rev)-1-i]
		}
		key := fpm.Key(items)
		if i, ok := index[key]; ok {
			paths[i].weight += weight
			continue
		}
		index[key] = len(paths)
		paths = append(paths, patternPath{items: items, weight: weight})
	}
	return paths
}

// IsSinglePath 整棵树是否只有一条路径
func (t *FPTree) IsSinglePath() bool {
	cur := 0
	for {
		children := t.nodes[cur].children
		if len(children) == 0 {
			return true
		}
		if len(children) > 1 {
			return false
		}
		for _, c := range children {
			cur = c
		}
	}
}

// SinglePathNodes 单路径时从根往下的节点序列,调用前先用IsSinglePath判断
func (t *FPTree) SinglePathNodes() []fpNode {
	var nodes []fpNode
	cur := 0
	for len(t.nodes[cur].children) == 1 {
		for _, c := range t.nodes[cur].children {
			cur = c
		}
		nodes = append(nodes, t.nodes[cur])
	}
	return nodes
}
