package qa

import "context"

// Generator 文本生成能力，进程启动时选定具体实现
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// LocalEcho 未配置大模型时使用的本地回显
type LocalEcho struct{}

func (LocalEcho) Name() string {
	return "local"
}

func (LocalEcho) Generate(_ context.Context, prompt string) (string, error) {
	return "(local) You asked: " + prompt, nil
}
