package collector

import (
	"fmt"

	"github.com/gocolly/colly/v2"
)

// BBCFetcher 抓取 BBC News 首页标题
type BBCFetcher struct {
	Options
}

func (b *BBCFetcher) Name() string {
	return "bbc_news"
}

func (b *BBCFetcher) Fetch() ([]NewsItem, error) {
	c := colly.NewCollector(
		colly.UserAgent(b.UserAgent),
	)
	c.SetRequestTimeout(b.Timeout)

	var results []NewsItem

	// 页面结构可能调整，此处基于当前的 DOM 结构做“尽力而为”的解析
	c.OnHTML("html", func(e *colly.HTMLElement) {
		results = extractHeadlines(e.DOM, b.Options)
	})

	// 非 2xx 状态码也会在这里以 error 返回
	if err := c.Visit(b.SourceURL); err != nil {
		return nil, fmt.Errorf("bbc: visit %s: %w", b.SourceURL, err)
	}

	return results, nil
}
