// File path: internal/llm/providers/openai_client.go
package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"

	"github.com/nicodishanthj/copybridge/internal/common"
)

type OpenAIProvider struct {
	client    openai.Client
	chatModel string
}

func NewOpenAIProvider(client openai.Client) *OpenAIProvider {
	chatModel := os.Getenv("OPENAI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = "gpt-4o"
	}
	logger := common.Logger()
	logger.Info("llm: OpenAI provider configured", "chat_model", chatModel)
	return &OpenAIProvider{client: client, chatModel: chatModel}
}

func (o *OpenAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", o.chatModel, "messages", len(messages))
	params := openai.ChatCompletionNewParams{Model: openai.ChatModel(o.chatModel)}
	for _, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}
