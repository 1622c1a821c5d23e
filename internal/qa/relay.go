package qa

import (
	"context"
	"log/slog"
	"net/http"
)

const NoQuestionAnswer = "⚠️ No question provided."

// Relay 把问题转发给启动时选定的 Generator
type Relay struct {
	gen Generator
	log *slog.Logger
}

// NewRelay gen 为 nil 时使用本地回显
func NewRelay(gen Generator, log *slog.Logger) *Relay {
	if gen == nil {
		gen = LocalEcho{}
	}
	return &Relay{gen: gen, log: log}
}

// Backend 当前使用的实现名称
func (r *Relay) Backend() string {
	return r.gen.Name()
}

// Ask 返回回答与 HTTP 状态码。模型调用失败不算请求失败，错误信息放在回答里返回 200
func (r *Relay) Ask(ctx context.Context, question string) (string, int) {
	if question == "" {
		return NoQuestionAnswer, http.StatusBadRequest
	}

	answer, err := r.gen.Generate(ctx, question)
	if err != nil {
		r.log.Warn("model call failed", slog.String("backend", r.gen.Name()), slog.Any("err", err))
		return "⚠️ Gemini error: " + err.Error(), http.StatusOK
	}
	return answer, http.StatusOK
}
