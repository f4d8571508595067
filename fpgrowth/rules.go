package fpgrowth

import (
	"fmt"
	"math"

	"fpm-shenglin/rock-share/base/logger"
	"fpm-shenglin/rock-share/global/model/fpm"
	"fpm-shenglin/utils"

	mapset "github.com/deckarep/golang-set"
	"github.com/yourbasic/bit"
	"golang.org/x/exp/slices"
)

// GenerateRules 从频繁项集生成关联规则,后件逐层扩大
// 某个后件置信度不达标时,它的所有超集后件也必然不达标,直接剪掉
func GenerateRules(itemsets fpm.ItemsetMap, minConfidence float64, totalTx int) ([]fpm.Rule, error) {
	if minConfidence <= 0 || minConfidence > 1 {
		return nil, utils.ParamErrorf("confidence must be in (0,1], got %v", minConfidence)
	}
	if totalTx <= 0 {
		return nil, utils.ParamErrorf("transaction count must be positive, got %v", totalTx)
	}

	var rules []fpm.Rule
	for _, set := range itemsets {
		if len(set.Items) < 2 {
			continue
		}
		rules = append(rules, rulesFromItemset(set, itemsets, minConfidence, totalTx)...)
	}
	slices.SortFunc(rules, func(a, b fpm.Rule) bool {
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		return a.Ree < b.Ree
	})
	logger.Infof("规则生成完成,频繁项集数:%v,规则数:%v", len(itemsets), len(rules))
	return rules, nil
}

func rulesFromItemset(set fpm.Itemset, all fpm.ItemsetMap, minConfidence float64, totalTx int) []fpm.Rule {
	var rules []fpm.Rule

	// 已确认达标的后件,按内容键去重和查子集
	confident := mapset.NewSet()
	var level [][]int
	for _, item := range set.Items {
		rhs := []int{item}
		rule, ok := buildRule(set, rhs, all, minConfidence, totalTx)
		if !ok {
			continue
		}
		rules = append(rules, rule)
		confident.Add(fpm.Key(rhs))
		level = append(level, rhs)
	}

	for len(level) > 0 && len(level[0])+1 < len(set.Items) {
		var next [][]int
		seen := mapset.NewSet()
		for i := 0; i < len(level); i++ {
			for j := i + 1; j < len(level); j++ {
				cand, ok := unionDiffOne(level[i], level[j])
				if !ok {
					continue
				}
				key := fpm.Key(cand)
				if seen.Contains(key) {
					continue
				}
				seen.Add(key)
				// 有一个低一阶的子后件不达标就不用算了
				if !allSubsetsConfident(cand, confident) {
					continue
				}
				rule, ok := buildRule(set, cand, all, minConfidence, totalTx)
				if !ok {
					continue
				}
				rules = append(rules, rule)
				confident.Add(key)
				next = append(next, cand)
			}
		}
		level = next
	}
	return rules
}

// unionDiffOne 两个同阶后件前k-1项相同时合并成高一阶的候选,保持升序
func unionDiffOne(a, b []int) ([]int, bool) {
	k := len(a)
	for i := 0; i < k-1; i++ {
		if a[i] != b[i] {
			return nil, false
		}
	}
	if a[k-1] == b[k-1] {
		return nil, false
	}
	cand := make([]int, 0, k+1)
	cand = append(cand, a[:k-1]...)
	if a[k-1] < b[k-1] {
		cand = append(cand, a[k-1], b[k-1])
	} else {
		cand = append(cand, b[k-1], a[k-1])
	}
	return cand, true
}

func allSubsetsConfident(cand []int, confident mapset.Set) bool {
	sub := make([]int, 0, len(cand)-1)
	for i := range cand {
		sub = sub[:0]
		sub = append(sub, cand[:i]...)
		sub = append(sub, cand[i+1:]...)
		if !confident.Contains(fpm.Key(sub)) {
			return false
		}
	}
	return true
}

// buildRule 给定项集和后件算一条规则,置信度不达标返回false
func buildRule(set fpm.Itemset, rhs []int, all fpm.ItemsetMap, minConfidence float64, totalTx int) (fpm.Rule, bool) {
	inRhs := bit.New(rhs...)
	lhs := make([]int, 0, len(set.Items)-len(rhs))
	for _, item := range set.Items {
		if !inRhs.Contains(item) {
			lhs = append(lhs, item)
		}
	}
	lhsSet, ok := all[fpm.Key(lhs)]
	if !ok {
		logger.Warnf("前件:%v不在频繁项集里,跳过", lhs)
		return fpm.Rule{}, false
	}
	rhsSet, ok := all[fpm.Key(rhs)]
	if !ok {
		logger.Warnf("后件:%v不在频繁项集里,跳过", rhs)
		return fpm.Rule{}, false
	}

	total := float64(totalTx)
	unionSupp := float64(set.Support)
	confidence := unionSupp / float64(lhsSet.Support)
	if confidence < minConfidence {
		return fpm.Rule{}, false
	}
	support := unionSupp / total
	rhsFrac := float64(rhsSet.Support) / total
	conviction := math.Inf(1)
	if confidence < 1 {
		conviction = (1 - rhsFrac) / (1 - confidence)
	}
	return fpm.Rule{
		Lhs:        lhs,
		Rhs:        slices.Clone(rhs),
		Ree:        fmt.Sprintf("%s->%s", utils.JoinInts(lhs), utils.JoinInts(rhs)),
		Support:    support,
		Confidence: confidence,
		Lift:       confidence / rhsFrac,
		Leverage:   support - float64(lhsSet.Support)/total*rhsFrac,
		Conviction: conviction,
	}, true
}
