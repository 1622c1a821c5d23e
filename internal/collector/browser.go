package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// BrowserFetcher 用 headless Chrome 渲染页面后再解析，适合依赖前端渲染的页面。
// 每次抓取启动独立的浏览器实例，不在请求之间共享状态。
type BrowserFetcher struct {
	Options
}

func (b *BrowserFetcher) Name() string {
	return "bbc_news_browser"
}

func (b *BrowserFetcher) Fetch() ([]NewsItem, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.UserAgent(b.UserAgent))
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	ctx, cancel := context.WithTimeout(browserCtx, b.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(b.SourceURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("browser: render %s: %w", b.SourceURL, err)
	}

	return parseHeadlines(strings.NewReader(html), b.Options)
}
