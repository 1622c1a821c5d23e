package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LJTian/NewsPulse/internal/api"
	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/metrics"
	"github.com/LJTian/NewsPulse/internal/newsfeed"
	"github.com/LJTian/NewsPulse/internal/processor"
	"github.com/LJTian/NewsPulse/internal/qa"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.New("api")

	// .env 可选，不存在时直接读环境变量
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env loaded", slog.Any("err", err))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	fetcher := collector.New(cfg.FetchMode, collector.Options{
		SourceURL: cfg.SourceURL,
		Origin:    cfg.BaseOrigin,
		MaxItems:  cfg.MaxItems,
		Timeout:   cfg.FetchTimeout,
		UserAgent: cfg.UserAgent,
	})

	// 启动时决定问答后端，之后不再检查
	var gen qa.Generator
	if cfg.GeminiEnabled() {
		gen = qa.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, cfg.GeminiTimeout)
	}
	relay := qa.NewRelay(gen, log)

	m := metrics.New()
	feed := newsfeed.New(fetcher, processor.NewSimpleProcessor(), log, m)
	r := api.NewRouter(api.NewServer(feed, relay, m, log))

	addr := ":" + cfg.AppPort
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("starting api server",
			slog.String("addr", addr),
			slog.String("source", fetcher.Name()),
			slog.String("qa_backend", relay.Backend()),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server exit", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}
