package collector

import "time"

// NewsItem 采集到的原始标题
type NewsItem struct {
	Title string
	URL   string
	// Category 仅兜底数据预先填写；为空时由 processor 按关键词分类
	Category string
}

// Fetcher 抽象每一个数据源
type Fetcher interface {
	Name() string
	Fetch() ([]NewsItem, error)
}

// Options 数据源的公共参数
type Options struct {
	SourceURL string
	// Origin 用于补全以 / 开头的相对链接
	Origin    string
	MaxItems  int
	Timeout   time.Duration
	UserAgent string
}

// New 按模式创建 Fetcher：browser 使用 headless Chrome 渲染，其余走普通 HTTP
func New(mode string, opts Options) Fetcher {
	if mode == "browser" {
		return &BrowserFetcher{Options: opts}
	}
	return &BBCFetcher{Options: opts}
}
