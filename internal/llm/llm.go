// File path: internal/llm/llm.go
package llm

import (
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects the chat backend from the environment: OpenAI when
// OPENAI_API_KEY is set, otherwise the deterministic local fallback.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		client := openai.NewClient(opts...)
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(client)
	}
	logger.Warn("llm: OPENAI_API_KEY not set; falling back to local provider")
	return providers.NewLocalProvider()
}
