// File path: internal/agent/annotator_test.go
package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/nicodishanthj/copybridge/internal/copybook"
	"github.com/nicodishanthj/copybridge/internal/llm"
)

type mockProvider struct {
	chatResponse string
	lastMessages []llm.Message
	chatCalls    int
}

func (m *mockProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	m.chatCalls++
	m.lastMessages = append([]llm.Message(nil), messages...)
	if m.chatResponse == "" {
		return "mock-response", nil
	}
	return m.chatResponse, nil
}

func (m *mockProvider) Name() string { return "mock" }

func parsedFields(t *testing.T) []copybook.Field {
	t.Helper()
	fields := copybook.NewParser().Parse(`01  REC.
    05  CUST-ID    PIC 9(10).
    05  CUST-NAME  PIC X(30).`)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	return fields
}

func TestAnnotateBuildsLayoutPrompt(t *testing.T) {
	provider := &mockProvider{chatResponse: "- cust_id: customer identifier"}
	annotator := NewAnnotator(provider)

	answer, err := annotator.Annotate(context.Background(), "customer", parsedFields(t))
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if answer != "- cust_id: customer identifier" {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if provider.chatCalls != 1 {
		t.Fatalf("expected one chat call, got %d", provider.chatCalls)
	}
	if len(provider.lastMessages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(provider.lastMessages))
	}
	if provider.lastMessages[0].Role != "system" {
		t.Fatalf("expected leading system message, got %q", provider.lastMessages[0].Role)
	}
	user := provider.lastMessages[1]
	if user.Role != "user" {
		t.Fatalf("expected user message, got %q", user.Role)
	}
	for _, want := range []string{"bronze.customer", "cust_id BIGINT", "cust_name VARCHAR(30)", "group REC", "PIC 9(10)"} {
		if !strings.Contains(user.Content, want) {
			t.Fatalf("prompt missing %q:\n%s", want, user.Content)
		}
	}
}

func TestAnnotateRejectsEmptyLayout(t *testing.T) {
	annotator := NewAnnotator(&mockProvider{})
	if _, err := annotator.Annotate(context.Background(), "customer", nil); err == nil {
		t.Fatalf("expected error for empty field list")
	}
}

func TestAnnotateRequiresProvider(t *testing.T) {
	annotator := NewAnnotator(nil)
	if _, err := annotator.Annotate(context.Background(), "customer", parsedFields(t)); err == nil {
		t.Fatalf("expected error without provider")
	}
}
