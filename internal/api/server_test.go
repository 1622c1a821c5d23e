package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/metrics"
	"github.com/LJTian/NewsPulse/internal/newsfeed"
	"github.com/LJTian/NewsPulse/internal/processor"
	"github.com/LJTian/NewsPulse/internal/qa"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	items []collector.NewsItem
	err   error
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) Fetch() ([]collector.NewsItem, error) { return s.items, s.err }

type stubGenerator struct {
	answer string
	err    error
}

func (g stubGenerator) Name() string { return "stub" }

func (g stubGenerator) Generate(context.Context, string) (string, error) { return g.answer, g.err }

type panicGenerator struct{}

func (panicGenerator) Name() string { return "panic" }

func (panicGenerator) Generate(context.Context, string) (string, error) { panic("nil model") }

func newTestRouter(t *testing.T, f collector.Fetcher, gen qa.Generator) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.Discard()
	m := metrics.New()
	feed := newsfeed.New(f, processor.NewSimpleProcessor(), log, m)
	s := NewServer(feed, qa.NewRelay(gen, log), m, log)
	s.now = func() time.Time { return time.Date(2025, 3, 7, 14, 5, 0, 0, time.UTC) }
	return NewRouter(s), m
}

func liveFetcher() *stubFetcher {
	return &stubFetcher{items: []collector.NewsItem{
		{Title: "Stocks slump on Monday", URL: "https://www.bbc.com/news/1"},
		{Title: "New iPhone unveiled", URL: "https://www.bbc.com/news/2"},
		{Title: "Bank shares rise", URL: "https://www.bbc.com/news/3"},
	}}
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIndexListsAllNews(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "07 Mar 2025, 02:05 PM")
	require.Contains(t, body, `<a href="/news/1">Stocks slump on Monday</a>`)
	require.Contains(t, body, `<a href="/news/3">Bank shares rise</a>`)
	require.Contains(t, body, `<option value="All" selected>All</option>`)
	require.Contains(t, body, `<option value="Cyber Security">Cyber Security</option>`)
}

func TestIndexFiltersByCategoryAndQuery(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodGet, "/?category=Business&q=BANK", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, `<a href="/news/1">Bank shares rise</a>`)
	require.NotContains(t, body, "Stocks slump on Monday")
	require.Contains(t, body, `value="bank"`)
	require.Contains(t, body, `<option value="Business" selected>Business</option>`)
}

func TestIndexEmptyResult(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodGet, "/?category=Animals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No news found.")
}

func TestIndexUsesFallbackWhenFetchFails(t *testing.T) {
	r, m := newTestRouter(t, &stubFetcher{err: errors.New("timeout")}, nil)

	rec := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<a href="/news/1">AI is Transforming the World</a>`)
	require.Contains(t, rec.Body.String(), `<a href="/news/16">Amazing Wildlife Discoveries</a>`)
	require.Equal(t, 1.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues("stub", metrics.OutcomeFallback)))
}

func TestDetail(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodGet, "/news/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>New iPhone unveiled</h1>")

	for _, target := range []string{"/news/0", "/news/42"} {
		rec := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		require.Contains(t, rec.Body.String(), "<h1>Stocks slump on Monday</h1>", target)
	}

	rec = do(r, http.MethodGet, "/news/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAskLocalEcho(t *testing.T) {
	r, m := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodPost, "/ask", `{"question":"What happened to stocks?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"answer":"(local) You asked: What happened to stocks?"}`, rec.Body.String())
	require.Equal(t, 1.0, testutil.ToFloat64(m.AskTotal.WithLabelValues("local", "200")))
}

func TestAskMissingQuestion(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	for _, body := range []string{`{}`, `{"question":""}`, `{"question":null}`, `["question"]`} {
		rec := do(r, http.MethodPost, "/ask", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.JSONEq(t, `{"answer":"⚠️ No question provided."}`, rec.Body.String(), body)
	}
}

func TestAskModelAnswerAndError(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), stubGenerator{answer: "Markets fell."})
	rec := do(r, http.MethodPost, "/ask", `{"question":"Why?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"answer":"Markets fell."}`, rec.Body.String())

	r, _ = newTestRouter(t, liveFetcher(), stubGenerator{err: errors.New("deadline exceeded")})
	rec = do(r, http.MethodPost, "/ask", `{"question":"Why?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"answer":"⚠️ Gemini error: deadline exceeded"}`, rec.Body.String())
}

func TestAskServerErrors(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodPost, "/ask", `{not json`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "⚠️ Server error:")

	r, _ = newTestRouter(t, liveFetcher(), panicGenerator{})
	rec = do(r, http.MethodPost, "/ask", `{"question":"boom?"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"answer":"⚠️ Server error: nil model"}`, rec.Body.String())
}

func TestHealthMetricsAndRequestID(t *testing.T) {
	r, _ := newTestRouter(t, liveFetcher(), nil)

	rec := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	_ = do(r, http.MethodGet, "/", "")
	rec = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "newspulse_fetch_total")
}
