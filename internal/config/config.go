package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

type Config struct {
	AppPort string

	// 新闻源
	SourceURL    string
	BaseOrigin   string
	MaxItems     int
	FetchTimeout time.Duration
	UserAgent    string
	FetchMode    string

	// Gemini，未配置 API Key 时问答走本地回显
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	GeminiTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "5000"),
		SourceURL:     getEnv("NEWS_SOURCE_URL", "https://www.bbc.com/news"),
		BaseOrigin:    getEnv("NEWS_BASE_ORIGIN", "https://www.bbc.com"),
		MaxItems:      getInt("NEWS_MAX_ITEMS", 30),
		FetchTimeout:  getDuration("NEWS_FETCH_TIMEOUT", 10*time.Second),
		UserAgent:     getEnv("NEWS_USER_AGENT", "Mozilla/5.0"),
		FetchMode:     getEnv("NEWS_FETCH_MODE", FetchModeHTTP),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiTimeout: getDuration("GEMINI_TIMEOUT", 30*time.Second),
	}

	if cfg.MaxItems <= 0 {
		return nil, fmt.Errorf("NEWS_MAX_ITEMS must be positive")
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("NEWS_FETCH_TIMEOUT must be positive")
	}
	if cfg.GeminiTimeout <= 0 {
		return nil, fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	if cfg.FetchMode != FetchModeHTTP && cfg.FetchMode != FetchModeBrowser {
		return nil, fmt.Errorf("NEWS_FETCH_MODE must be %q or %q, got %q", FetchModeHTTP, FetchModeBrowser, cfg.FetchMode)
	}
	if _, err := url.ParseRequestURI(cfg.SourceURL); err != nil {
		return nil, fmt.Errorf("NEWS_SOURCE_URL is invalid: %w", err)
	}

	return cfg, nil
}

// GeminiEnabled 是否配置了 Gemini
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
