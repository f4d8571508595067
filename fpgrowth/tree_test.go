package fpgrowth

import (
	"strings"
	"testing"
)

func buildTestTree() *FPTree {
	freq := map[int]int{0: 4, 1: 4, 2: 3}
	tree := NewFPTree(freq)
	tree.Insert([]int{0, 1}, 1)
	tree.Insert([]int{0, 1, 2}, 1)
	tree.Insert([]int{0, 2}, 1)
	tree.Insert([]int{0, 1}, 1)
	tree.Insert([]int{1}, 1)
	return tree
}

func TestInsertAndSupport(t *testing.T) {
	tree := buildTestTree()
	if got := tree.Support(0); got != 4 {
		t.Fatalf("item 0 support = %v, want 4", got)
	}
	if got := tree.Support(1); got != 4 {
		t.Fatalf("item 1 support = %v, want 4", got)
	}
	if got := tree.Support(2); got != 2 {
		t.Fatalf("item 2 support = %v, want 2", got)
	}
	if got := tree.Support(99); got != 0 {
		t.Fatalf("unknown item support = %v, want 0", got)
	}
	// 前缀共享,节点数应该远小于插入的项次数
	if tree.NodeNum() != 5 {
		t.Fatalf("node num = %v, want 5", tree.NodeNum())
	}
}

func TestHeaderChainSum(t *testing.T) {
	tree := buildTestTree()
	for item, entry := range tree.header {
		sum := 0
		for n := entry.head; n != nilIndex; n = tree.nodes[n].next {
			if tree.nodes[n].item != item {
				t.Fatalf("item %v的链表里出现了item %v", item, tree.nodes[n].item)
			}
			sum += tree.nodes[n].count
		}
		if sum != entry.support {
			t.Fatalf("item %v 链上计数和 = %v, 头表support = %v", item, sum, entry.support)
		}
	}
}

func TestInsertIgnoresUnknownItems(t *testing.T) {
	tree := NewFPTree(map[int]int{0: 1})
	tree.Insert([]int{0, 7}, 1)
	if tree.NodeNum() != 1 {
		t.Fatalf("node num = %v, want 1", tree.NodeNum())
	}
	if tree.Support(7) != 0 {
		t.Fatalf("未注册的项不应有支持度")
	}
	if tree.HasItem(7) || !tree.HasItem(0) {
		t.Fatalf("HasItem判断不对")
	}
	if paths := tree.FindPaths(7); paths != nil {
		t.Fatalf("未注册的项不应有条件模式基, got %v", paths)
	}
}

func TestFindPathsMerge(t *testing.T) {
	tree := buildTestTree()
	paths := tree.FindPaths(2)
	// {0,1,2}和{0,2}两条,前缀{0,1}和{0}
	if len(paths) != 2 {
		t.Fatalf("path num = %v, want 2", len(paths))
	}

	// 相同前缀要合并权重
	tree2 := NewFPTree(map[int]int{0: 3, 1: 3})
	tree2.Insert([]int{0, 1}, 1)
	tree2.Insert([]int{0, 1}, 2)
	paths2 := tree2.FindPaths(1)
	if len(paths2) != 1 {
		t.Fatalf("path num = %v, want 1", len(paths2))
	}
	if paths2[0].weight != 3 {
		t.Fatalf("merged weight = %v, want 3", paths2[0].weight)
	}
	if len(paths2[0].items) != 1 || paths2[0].items[0] != 0 {
		t.Fatalf("path items = %v, want [0]", paths2[0].items)
	}
}

func TestSinglePath(t *testing.T) {
	tree := NewFPTree(map[int]int{0: 3, 1: 2, 2: 1})
	tree.Insert([]int{0, 1, 2}, 1)
	tree.Insert([]int{0, 1}, 1)
	tree.Insert([]int{0}, 1)
	if !tree.IsSinglePath() {
		t.Fatalf("应该是单路径")
	}
	nodes := tree.SinglePathNodes()
	if len(nodes) != 3 {
		t.Fatalf("single path len = %v, want 3", len(nodes))
	}
	if nodes[0].count != 3 || nodes[1].count != 2 || nodes[2].count != 1 {
		t.Fatalf("path counts = %v,%v,%v", nodes[0].count, nodes[1].count, nodes[2].count)
	}

	tree.Insert([]int{1}, 1)
	if tree.IsSinglePath() {
		t.Fatalf("分叉后不应再是单路径")
	}
}

func TestItemsAscending(t *testing.T) {
	tree := buildTestTree()
	items := tree.ItemsAscending()
	if len(items) != 3 {
		t.Fatalf("items = %v", items)
	}
	// 2:2 < 0:4 = 1:4,同支持度编号小的在前
	if items[0] != 2 || items[1] != 0 || items[2] != 1 {
		t.Fatalf("ascending order = %v, want [2 0 1]", items)
	}
}

func TestToSimpleGraph(t *testing.T) {
	tree := buildTestTree()
	dot := tree.ToSimpleGraph()
	if !strings.Contains(dot, "digraph") {
		t.Fatalf("dot输出异常:%v", dot)
	}
	if !strings.Contains(dot, "root") {
		t.Fatalf("dot里没有根节点:%v", dot)
	}
}
