package processor

import (
	"strings"

	"github.com/LJTian/NewsPulse/internal/category"
)

// Filter 按分类与关键词过滤，两者同时存在时取交集，最后重新编号。不会修改入参。
// cat 为空或 All 时不过滤分类（区分大小写）；query 去空格并转小写后匹配标题或摘要。
func Filter(list []News, cat, query string) []News {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]News, 0, len(list))
	for _, n := range list {
		if cat != "" && cat != category.All && n.Category != cat {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Content), query) {
			continue
		}
		out = append(out, n)
	}

	return Renumber(out)
}

// Renumber 按当前顺序重新分配 1..k 的 ID
func Renumber(list []News) []News {
	for i := range list {
		list[i].ID = i + 1
	}
	return list
}

// Pick 取第 id 条（1-based），越界时返回第一条；列表为空时 ok 为 false
func Pick(list []News, id int) (News, bool) {
	if len(list) == 0 {
		return News{}, false
	}
	if id >= 1 && id <= len(list) {
		return list[id-1], true
	}
	return list[0], true
}
