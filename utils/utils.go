package utils

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type Number interface {
	int | int64 | int32 | uint32 | uint64 | float64
}

func Max[N Number](a, b N) N {
	if a > b {
		return a
	} else {
		return b
	}
}

func Min[N Number](a, b N) N {
	if a < b {
		return a
	} else {
		return b
	}
}

type KV[K any, V any] struct {
	Key   K
	Value V
}

func MapKVs[M ~map[K]V, K comparable, V any](m M) []KV[K, V] {
	if m == nil {
		return nil
	}
	var kvs = make([]KV[K, V], 0, len(m))
	for k, v := range m {
		kvs = append(kvs, KV[K, V]{
			Key:   k,
			Value: v,
		})
	}
	return kvs
}

func Distinct[T comparable](s []T) []T {
	var r = make([]T, 0, len(s))
	set := map[T]struct{}{}
	for i := range s {
		if _, ok := set[s[i]]; !ok {
			r = append(r, s[i])
			set[s[i]] = struct{}{}
		}
	}
	return r
}

// SortedCopy 返回排好序的副本,不动原切片
func SortedCopy[T int | int32 | int64 | string](s []T) []T {
	r := make([]T, len(s))
	copy(r, s)
	slices.Sort(r)
	return r
}

// JoinInts 项编号转成逗号分隔的字符串,输出和日志里用
func JoinInts(items []int) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(item))
	}
	return sb.String()
}
