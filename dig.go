package main

import (
	"path"
	"strconv"
	"strings"
	"time"

	"fpm-shenglin/fpgrowth"
	"fpm-shenglin/fpm_config"
	"fpm-shenglin/rock-share/base/config"
	"fpm-shenglin/rock-share/base/logger"
	"fpm-shenglin/rock-share/global/model/fpm"
	"fpm-shenglin/utils"

	"github.com/LinkinStars/golang-util/gu"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/slices"
)

// DigPatterns 一次完整的挖掘任务:读事务csv,挖频繁项集,生成关联规则,落盘结果
// 返回结果文件路径、频繁项集数、规则数和耗时(ms)
func DigPatterns(request *FPGrowthRequest) (string, int, int, int64, error) {
	startTime := time.Now().UnixMilli()
	taskId := startTime
	logger.Infof("taskId:%v,频繁项集挖掘开始,数据文件:%v", taskId, request.Table.Path)

	support, confidence, workers := fillDefaults(request)
	engine, err := fpgrowth.NewEngine[string](support, workers)
	if err != nil {
		return "", 0, 0, 0, err
	}

	var sep rune
	if request.Table.Separator != "" {
		sep = []rune(request.Table.Separator)[0]
	}
	source := utils.NewTransactionCSV(request.Table.Path, sep)

	itemsets, txCount, err := engine.Mine(source)
	if err != nil {
		logger.Errorf("taskId:%v,挖掘失败:%v", taskId, err)
		return "", 0, 0, 0, err
	}
	logger.Infof("taskId:%v,挖掘完成,事务数:%v,频繁项集数:%v", taskId, txCount, len(itemsets))

	var rules []fpm.Rule
	if fpm_config.EnableRuleGen && len(itemsets) > 0 {
		rules, err = fpgrowth.GenerateRules(itemsets, confidence, txCount)
		if err != nil {
			return "", 0, 0, 0, err
		}
	}

	p, err := writeResult(taskId, engine.Mapper(), itemsets, rules)
	if err != nil {
		return "", 0, 0, 0, err
	}

	spent := time.Now().UnixMilli() - startTime
	logRuleTable(taskId, rules)
	logger.Infof("taskId:%v,挖掘任务已完成,耗时:%vms,频繁项集:%v,规则:%v,结果文件:%v", taskId, spent, len(itemsets), len(rules), p)
	return p, len(itemsets), len(rules), spent, nil
}

// fillDefaults 请求里没给的参数用配置兜底
func fillDefaults(request *FPGrowthRequest) (float64, float64, int) {
	support := request.Support
	confidence := request.Confidence
	workers := request.Workers
	if support == 0 {
		support = config.All.Miner.Support
	}
	if confidence == 0 {
		confidence = config.All.Miner.Confidence
	}
	if workers == 0 {
		workers = config.All.Miner.Workers
	}
	return support, confidence, workers
}

// writeResult 项集和规则分两个csv落盘,编号映射回原始项,返回规则文件路径
func writeResult(taskId int64, mapper *fpgrowth.ItemMapper[string], itemsets fpm.ItemsetMap, rules []fpm.Rule) (string, error) {
	resultDir := config.All.Miner.ResultDir
	if resultDir == "" {
		resultDir = fpm_config.ResultDir
	}
	if err := gu.CreateDirIfNotExist(resultDir); err != nil {
		logger.Errorf("taskId:%v,创建结果目录失败:%v", taskId, err)
		return "", err
	}

	var sets [][]string
	sets = append(sets, []string{"items", "support"})
	for _, set := range itemsets {
		items, err := renderItems(mapper, set.Items)
		if err != nil {
			return "", err
		}
		sets = append(sets, []string{items, strconv.Itoa(set.Support)})
	}
	setPath := path.Join(resultDir, strconv.FormatInt(taskId, 10)+"_itemsets.csv")
	if err := utils.CreateCsv(setPath, sets); err != nil {
		return "", err
	}

	var data [][]string
	data = append(data, []string{"lhs", "rhs", "support", "confidence", "lift", "leverage", "conviction"})
	for _, rule := range rules {
		lhs, err := renderItems(mapper, rule.Lhs)
		if err != nil {
			return "", err
		}
		rhs, err := renderItems(mapper, rule.Rhs)
		if err != nil {
			return "", err
		}
		data = append(data, []string{
			lhs,
			rhs,
			strconv.FormatFloat(rule.Support, 'f', -1, 64),
			strconv.FormatFloat(rule.Confidence, 'f', -1, 64),
			strconv.FormatFloat(rule.Lift, 'f', -1, 64),
			strconv.FormatFloat(rule.Leverage, 'f', -1, 64),
			strconv.FormatFloat(rule.Conviction, 'f', -1, 64),
		})
	}
	p := path.Join(resultDir, strconv.FormatInt(taskId, 10)+".csv")
	if err := utils.CreateCsv(p, data); err != nil {
		return "", err
	}
	return p, nil
}

func renderItems(mapper *fpgrowth.ItemMapper[string], ids []int) (string, error) {
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		item, err := mapper.ItemOf(id)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
	slices.Sort(items)
	return strings.Join(items, ","), nil
}

// logRuleTable 日志里渲染置信度最高的若干条规则,方便不翻结果文件直接看效果
func logRuleTable(taskId int64, rules []fpm.Rule) {
	if len(rules) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetTitle("TOP RULES")
	t.AppendHeader(table.Row{"Rule", "Support", "Confidence", "Lift"})
	limit := utils.Min(len(rules), fpm_config.RuleTopK)
	for _, rule := range rules[:limit] {
		t.AppendRow(table.Row{rule.Ree, rule.Support, rule.Confidence, rule.Lift})
	}
	logger.Infof("taskId:%v,规则概览:\n%v", taskId, t.Render())
}
