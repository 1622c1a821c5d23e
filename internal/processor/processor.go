package processor

import (
	"strings"

	"github.com/LJTian/NewsPulse/internal/category"
	"github.com/LJTian/NewsPulse/internal/collector"
)

// News 是对外展示的统一结构。ID 为列表中的 1-based 位置，每次过滤后都会重新编号
type News struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// SimpleProcessor 做最基础的数据清洗、编号与分类
type SimpleProcessor struct{}

func NewSimpleProcessor() *SimpleProcessor {
	return &SimpleProcessor{}
}

func (p *SimpleProcessor) Process(items []collector.NewsItem) []News {
	out := make([]News, 0, len(items))

	for _, it := range items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}

		cat := it.Category
		if cat == "" {
			cat = category.Classify(title)
		}

		out = append(out, News{
			ID:       len(out) + 1,
			Title:    title,
			URL:      it.URL,
			Content:  Summarize(title),
			Category: cat,
		})
	}

	return out
}

// Summarize MVP: 暂用标题生成一句话摘要
func Summarize(title string) string {
	return "This is a short summary for: " + title + "."
}
