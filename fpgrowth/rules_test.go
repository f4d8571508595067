package fpgrowth

import (
	"math"
	"testing"

	"fpm-shenglin/rock-share/global/model/fpm"
)

const eps = 1e-9

func findRule(rules []fpm.Rule, lhs, rhs []int) (fpm.Rule, bool) {
	for _, r := range rules {
		if fpm.Key(r.Lhs) == fpm.Key(lhs) && fpm.Key(r.Rhs) == fpm.Key(rhs) {
			return r, true
		}
	}
	return fpm.Rule{}, false
}

func TestGenerateRulesGroceries(t *testing.T) {
	e, err := NewEngine[string](3, 1)
	if err != nil {
		t.Fatal(err)
	}
	itemsets, txCount, err := e.MineFromCollection(groceries())
	if err != nil {
		t.Fatal(err)
	}

	rules, err := GenerateRules(itemsets, 0.7, txCount)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 8 {
		t.Fatalf("rule num = %v, want 8", len(rules))
	}

	beer, _ := e.Mapper().IdOf("beer")
	diaper, _ := e.Mapper().IdOf("diaper")
	r, ok := findRule(rules, []int{beer}, []int{diaper})
	if !ok {
		t.Fatalf("没找到beer=>diaper规则:%v", rules)
	}
	if math.Abs(r.Confidence-1.0) > eps {
		t.Fatalf("confidence = %v, want 1.0", r.Confidence)
	}
	if math.Abs(r.Support-0.6) > eps {
		t.Fatalf("support = %v, want 0.6", r.Support)
	}
	if math.Abs(r.Lift-1.25) > eps {
		t.Fatalf("lift = %v, want 1.25", r.Lift)
	}
	if math.Abs(r.Leverage-0.12) > eps {
		t.Fatalf("leverage = %v, want 0.12", r.Leverage)
	}
	if !math.IsInf(r.Conviction, 1) {
		t.Fatalf("置信度为1时conviction应为+Inf, got %v", r.Conviction)
	}

	// 置信度小于1的规则conviction必须有限
	bread, _ := e.Mapper().IdOf("bread")
	milk, _ := e.Mapper().IdOf("milk")
	r2, ok := findRule(rules, []int{bread}, []int{milk})
	if !ok {
		t.Fatalf("没找到bread=>milk规则")
	}
	if math.Abs(r2.Confidence-0.75) > eps {
		t.Fatalf("confidence = %v, want 0.75", r2.Confidence)
	}
	if math.IsInf(r2.Conviction, 1) {
		t.Fatalf("置信度0.75的规则conviction不应是Inf")
	}
	// conviction = (1-0.8)/(1-0.75) = 0.8
	if math.Abs(r2.Conviction-0.8) > eps {
		t.Fatalf("conviction = %v, want 0.8", r2.Conviction)
	}
}

// 三项的频繁项集要能产出多项后件的规则
func TestGenerateRulesMultiItemConsequent(t *testing.T) {
	txs := [][]string{
		{"a", "b", "c"},
		{"a", "b", "c"},
		{"a", "b", "c"},
		{"a", "b"},
	}
	e, err := NewEngine[string](3, 1)
	if err != nil {
		t.Fatal(err)
	}
	itemsets, txCount, err := e.MineFromCollection(txs)
	if err != nil {
		t.Fatal(err)
	}

	rules, err := GenerateRules(itemsets, 0.7, txCount)
	if err != nil {
		t.Fatal(err)
	}
	// 三项集6条+三个二项集各2条
	if len(rules) != 12 {
		t.Fatalf("rule num = %v, want 12", len(rules))
	}

	a, _ := e.Mapper().IdOf("a")
	b, _ := e.Mapper().IdOf("b")
	c, _ := e.Mapper().IdOf("c")
	rhs := []int{b, c}
	if b > c {
		rhs = []int{c, b}
	}
	r, ok := findRule(rules, []int{a}, rhs)
	if !ok {
		t.Fatalf("没找到a=>{b,c}规则:%v", rules)
	}
	if math.Abs(r.Confidence-0.75) > eps {
		t.Fatalf("confidence = %v, want 0.75", r.Confidence)
	}
}

func TestGenerateRulesSortedByConfidence(t *testing.T) {
	e, err := NewEngine[string](3, 1)
	if err != nil {
		t.Fatal(err)
	}
	itemsets, txCount, err := e.MineFromCollection(groceries())
	if err != nil {
		t.Fatal(err)
	}
	rules, err := GenerateRules(itemsets, 0.7, txCount)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rules); i++ {
		if rules[i].Confidence > rules[i-1].Confidence+eps {
			t.Fatalf("规则没按置信度降序排:%v在%v后面", rules[i].Ree, rules[i-1].Ree)
		}
	}
}

func TestGenerateRulesValidation(t *testing.T) {
	itemsets := fpm.ItemsetMap{}
	if _, err := GenerateRules(itemsets, 0, 10); err == nil {
		t.Fatalf("置信度为0应报错")
	}
	if _, err := GenerateRules(itemsets, 1.5, 10); err == nil {
		t.Fatalf("置信度大于1应报错")
	}
	if _, err := GenerateRules(itemsets, 0.8, 0); err == nil {
		t.Fatalf("事务数为0应报错")
	}
}

func TestGenerateRulesEmptyItemsets(t *testing.T) {
	rules, err := GenerateRules(fpm.ItemsetMap{}, 0.8, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 0 {
		t.Fatalf("空项集不应产出规则, got %v", rules)
	}
}
