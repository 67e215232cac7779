// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

type Message struct {
	Role    string
	Content string
}

type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// LocalProvider is the deterministic fallback used when no OpenAI key is
// configured. It echoes the final message so the annotation surface stays
// usable in development and tests.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := messages[len(messages)-1].Content
	return "[local-stub] " + strings.TrimSpace(last), nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
