package newsfeed

import (
	"log/slog"
	"time"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/metrics"
	"github.com/LJTian/NewsPulse/internal/processor"
)

// Service 每次调用都重新抓取，不在请求之间缓存
type Service struct {
	fetcher   collector.Fetcher
	processor *processor.SimpleProcessor
	log       *slog.Logger
	metrics   *metrics.Metrics
}

func New(f collector.Fetcher, p *processor.SimpleProcessor, log *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{fetcher: f, processor: p, log: log, metrics: m}
}

// Load 抓取并整理全部新闻；抓取出错或结果为空时使用兜底数据，不向调用方返回错误
func (s *Service) Load() []processor.News {
	name := s.fetcher.Name()
	start := time.Now()

	items, err := s.fetcher.Fetch()
	if err != nil {
		s.log.Warn("fetch failed", slog.String("source", name), slog.Any("err", err))
	}
	s.observeDuration(time.Since(start))

	list := s.processor.Process(items)
	outcome := metrics.OutcomeLive
	if len(list) == 0 {
		s.log.Info("no headlines extracted, using fallback", slog.String("source", name))
		list = s.processor.Process(collector.FallbackItems())
		outcome = metrics.OutcomeFallback
	}

	s.log.Debug("headlines loaded", slog.String("source", name), slog.String("outcome", outcome), slog.Int("count", len(list)))
	if s.metrics != nil {
		s.metrics.FetchTotal.WithLabelValues(name, outcome).Inc()
		s.metrics.FetchedItems.Set(float64(len(list)))
	}
	return list
}

// List 列表页：分类与关键词过滤后重新编号
func (s *Service) List(query, cat string) []processor.News {
	return processor.Filter(s.Load(), cat, query)
}

// Detail 详情页：重新抓取一份未过滤的列表后按位置取，越界返回第一条
func (s *Service) Detail(id int) processor.News {
	n, _ := processor.Pick(s.Load(), id)
	return n
}

func (s *Service) observeDuration(d time.Duration) {
	if s.metrics != nil {
		s.metrics.FetchDuration.Observe(d.Seconds())
	}
}
