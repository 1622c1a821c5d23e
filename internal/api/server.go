package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LJTian/NewsPulse/internal/category"
	"github.com/LJTian/NewsPulse/internal/metrics"
	"github.com/LJTian/NewsPulse/internal/newsfeed"
	"github.com/LJTian/NewsPulse/internal/qa"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const lastUpdatedLayout = "02 Jan 2006, 03:04 PM"

type Server struct {
	feed      *newsfeed.Service
	relay     *qa.Relay
	metrics   *metrics.Metrics
	log       *slog.Logger
	templates *template.Template
	now       func() time.Time
}

func NewServer(feed *newsfeed.Service, relay *qa.Relay, m *metrics.Metrics, log *slog.Logger) *Server {
	return &Server{
		feed:      feed,
		relay:     relay,
		metrics:   m,
		log:       log,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		now:       time.Now,
	}
}

// NewRouter 创建带默认中间件的 gin 引擎并注册路由
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(s.templates)

	r.GET("/", s.index)
	r.GET("/news/:id", s.detail)
	r.POST("/ask", s.ask)

	r.GET("/health", s.health)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) index(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	cat := c.DefaultQuery("category", category.All)

	c.HTML(http.StatusOK, "news.html", gin.H{
		"news_list":    s.feed.List(query, cat),
		"last_updated": s.now().Format(lastUpdatedLayout),
		"query":        query,
		"category":     cat,
		"categories":   category.Options(),
	})
}

func (s *Server) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	c.HTML(http.StatusOK, "detail.html", gin.H{
		"news": s.feed.Detail(id),
	})
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) ask(c *gin.Context) {
	backend := s.relay.Backend()

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("ask panicked", slog.Any("panic", rec))
			s.respondAsk(c, backend, http.StatusInternalServerError, fmt.Sprintf("⚠️ Server error: %v", rec))
		}
	}()

	var body any
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		s.respondAsk(c, backend, http.StatusInternalServerError, "⚠️ Server error: "+err.Error())
		return
	}

	// 只接受 {"question": "..."}，其它形状一律视为没有问题
	var question string
	if m, ok := body.(map[string]any); ok {
		question, _ = m["question"].(string)
	}

	answer, status := s.relay.Ask(c.Request.Context(), question)
	s.respondAsk(c, backend, status, answer)
}

func (s *Server) respondAsk(c *gin.Context, backend string, status int, answer string) {
	if s.metrics != nil {
		s.metrics.AskTotal.WithLabelValues(backend, strconv.Itoa(status)).Inc()
	}
	c.JSON(status, askResponse{Answer: answer})
}
