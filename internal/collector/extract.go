package collector

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BBC 首页的标题结构：<a data-testid="internal-link"> 内嵌 <h3>
const headlineSelector = "a[data-testid='internal-link'] h3"

// extractHeadlines 从文档中最多取 max 个匹配元素，文本为空的元素也占一个名额
func extractHeadlines(root *goquery.Selection, opts Options) []NewsItem {
	var results []NewsItem
	seen := 0

	root.Find(headlineSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if seen >= opts.MaxItems {
			return false
		}
		seen++

		title := strings.TrimSpace(s.Text())
		if title == "" {
			return true
		}

		href, _ := s.Closest("a").Attr("href")
		results = append(results, NewsItem{
			Title: title,
			URL:   ResolveLink(href, opts.Origin, opts.SourceURL),
		})
		return true
	})

	return results
}

// parseHeadlines 解析完整 HTML 文本
func parseHeadlines(r io.Reader, opts Options) ([]NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return extractHeadlines(doc.Selection, opts), nil
}

// ResolveLink 规范化链接：/ 开头补全站点 origin，缺失时退回默认栏目地址，其余原样返回
func ResolveLink(href, origin, defaultURL string) string {
	switch {
	case strings.HasPrefix(href, "/"):
		return origin + href
	case href != "":
		return href
	default:
		return defaultURL
	}
}
