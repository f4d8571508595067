package fpm

import (
	"fpm-shenglin/utils"
)

// Itemset 频繁项集,Items为升序的项编号,Support为绝对支持度(包含该项集的事务数)
type Itemset struct {
	Items   []int `json:"items"`
	Support int   `json:"support"`
}

// ItemsetMap 项集结果,key为Key生成的规范化串,保证按内容而不是按引用去重
type ItemsetMap map[string]Itemset

// Key 升序项编号用逗号连接,作为项集的规范化key
func Key(items []int) string {
	return utils.JoinInts(items)
}

// Merge 合并另一份结果。不同分支返回的项集前缀不同,key不会相互覆盖
func (m ItemsetMap) Merge(other ItemsetMap) {
	for k, v := range other {
		m[k] = v
	}
}
