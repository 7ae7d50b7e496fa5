package pagination

import (
	"sort"

	"vidtube.com/pkg/constants"
)

// Param 规范化后的分页参数, 页码从1开始
type Param struct {
	PageNum  int64
	PageSize int64
}

// Normalize 修正非法的页码与页大小
func Normalize(pageNum, pageSize int64) Param {
	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Param{PageNum: pageNum, PageSize: pageSize}
}

// Offset 计算跳过的行数
func (p Param) Offset() int {
	return int((p.PageNum - 1) * p.PageSize)
}

// Limit 计算取出的行数
func (p Param) Limit() int {
	return int(p.PageSize)
}

// Page 对已排序的切片做内存分页, 越界返回空切片而不是错误
func Page[T any](items []T, p Param) []T {
	offset := p.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + p.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// LessFunc 主排序比较函数, 返回a是否排在b之前
type LessFunc[T any] func(a, b T) bool

// SortStable 排序必须发生在分页之前, 并用id作为次级键保证重复查询时分页结果稳定
func SortStable[T any](items []T, less LessFunc[T], id func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return id(a) < id(b)
	})
}
