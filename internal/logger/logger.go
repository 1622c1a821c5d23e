package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New 构造带 service 字段的文本 logger，级别由 LOG_LEVEL 控制
func New(service string) *slog.Logger {
	return NewWithWriter(os.Stdout, service)
}

// NewWithWriter 同 New，但输出到指定 writer，便于测试
func NewWithWriter(w io.Writer, service string) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", service)
}

// Discard 丢弃所有输出
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
