// File path: internal/agent/annotator.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langgraphgo/graph"

	"github.com/nicodishanthj/copybridge/internal/common"
	"github.com/nicodishanthj/copybridge/internal/copybook"
	"github.com/nicodishanthj/copybridge/internal/llm"
)

const annotateSystemPrompt = "You are a data engineer documenting a bronze-layer landing table " +
	"generated from a COBOL copybook. For each column, write one short sentence describing " +
	"its likely business meaning, noting the original copybook field and parent group. " +
	"Respond in Markdown with one bullet per column, in the given order."

// Annotator generates column documentation for a parsed layout by running
// a single-node message graph over the configured chat provider.
type Annotator struct {
	provider llm.Provider
}

func NewAnnotator(provider llm.Provider) *Annotator {
	return &Annotator{provider: provider}
}

// Annotate returns Markdown documentation for the table's columns. The
// field list must be non-empty; annotation of a degenerate zero-column
// layout is rejected here rather than sent to the model.
func (a *Annotator) Annotate(ctx context.Context, tableName string, fields []copybook.Field) (string, error) {
	if a == nil || a.provider == nil {
		return "", fmt.Errorf("no annotation provider available")
	}
	if len(fields) == 0 {
		return "", fmt.Errorf("no fields to annotate")
	}
	logger := common.Logger()
	logger.Info("agent: annotating layout", "table", tableName, "fields", len(fields), "provider", a.provider.Name())

	g := graph.NewMessageGraph()
	g.AddNode("annotate", func(ctx context.Context, state []llms.MessageContent) ([]llms.MessageContent, error) {
		answer, err := a.provider.Chat(ctx, toProviderMessages(state))
		if err != nil {
			return nil, err
		}
		return append(state, llms.TextParts(llms.ChatMessageTypeAI, answer)), nil
	})
	g.AddEdge("annotate", graph.END)
	g.SetEntryPoint("annotate")
	runnable, err := g.Compile()
	if err != nil {
		return "", fmt.Errorf("compile annotation graph: %w", err)
	}

	initial := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, annotateSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, describeLayout(tableName, fields)),
	}
	out, err := runnable.Invoke(ctx, initial)
	if err != nil {
		return "", err
	}
	answer := lastMessageText(out)
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("empty annotation response")
	}
	return answer, nil
}

func describeLayout(tableName string, fields []copybook.Field) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Table %s.%s has %d columns:\n", copybook.Namespace, tableName, len(fields))
	for _, f := range fields {
		fmt.Fprintf(&builder, "- %s %s (copybook field %s", copybook.ColumnName(f.Name), f.SQLType, f.Name)
		if f.Pic != "" {
			fmt.Fprintf(&builder, ", PIC %s", f.Pic)
		}
		if f.Parent != "" {
			fmt.Fprintf(&builder, ", group %s", f.Parent)
		}
		builder.WriteString(")\n")
	}
	return builder.String()
}

func toProviderMessages(state []llms.MessageContent) []llm.Message {
	messages := make([]llm.Message, 0, len(state))
	for _, mc := range state {
		role := "user"
		switch mc.Role {
		case llms.ChatMessageTypeSystem:
			role = "system"
		case llms.ChatMessageTypeAI:
			role = "assistant"
		}
		var parts []string
		for _, part := range mc.Parts {
			if text, ok := part.(llms.TextContent); ok {
				parts = append(parts, text.Text)
			}
		}
		messages = append(messages, llm.Message{Role: role, Content: strings.Join(parts, "\n")})
	}
	return messages
}

func lastMessageText(state []llms.MessageContent) string {
	if len(state) == 0 {
		return ""
	}
	var parts []string
	for _, part := range state[len(state)-1].Parts {
		if text, ok := part.(llms.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}
