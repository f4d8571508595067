package fpgrowth

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// ToSimpleGraph 把树导出成dot格式,调试小数据量时看树形用
func (t *FPTree) ToSimpleGraph() string {
	graphAst, _ := gographviz.Parse([]byte(`digraph G{}`))
	graph := gographviz.NewGraph()
	gographviz.Analyse(graphAst, graph)

	for i := range t.nodes {
		label := `"root"`
		if i > 0 {
			label = fmt.Sprintf(`"%d:%d"`, t.nodes[i].item, t.nodes[i].count)
		}
		graph.AddNode("G", fmt.Sprintf("%d", i), map[string]string{"label": label})
	}
	for i := 1; i < len(t.nodes); i++ {
		graph.AddEdge(fmt.Sprintf("%d", t.nodes[i].parent), fmt.Sprintf("%d", i), true, nil)
	}
	return graph.String()
}
