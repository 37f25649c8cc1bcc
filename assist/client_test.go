package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"bitrpc/model"
	"bitrpc/provider/testutil"
)

func TestFallbacksAreFixed(t *testing.T) {
	tests := []struct {
		kind        Kind
		fallback    string
		placeholder string
	}{
		{KindScript, "# Error generating script. Please check your API key and try again.", "# No code generated."},
		{KindSingleSimulation, "{\n  \"error\": \"Failed to simulate response\"\n}", "{}"},
		{KindBatchSimulation, "[\n  {\n    \"error\": \"Failed to simulate batch response\"\n  }\n]", "[]"},
		{KindChat, "Sorry, I encountered an error communicating with the API.", "I couldn't generate a response."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Fallback(tt.kind); got != tt.fallback {
				t.Errorf("Fallback() = %q, want %q", got, tt.fallback)
			}
			if got := EmptyPlaceholder(tt.kind); got != tt.placeholder {
				t.Errorf("EmptyPlaceholder() = %q, want %q", got, tt.placeholder)
			}
		})
	}
}

func TestSimulationFallbacksAreJSON(t *testing.T) {
	var obj map[string]string
	if err := json.Unmarshal([]byte(Fallback(KindSingleSimulation)), &obj); err != nil {
		t.Fatalf("single fallback is not JSON: %v", err)
	}
	if obj["error"] != "Failed to simulate response" {
		t.Errorf("single fallback = %v", obj)
	}

	var arr []map[string]string
	if err := json.Unmarshal([]byte(Fallback(KindBatchSimulation)), &arr); err != nil {
		t.Fatalf("batch fallback is not JSON: %v", err)
	}
	if len(arr) != 1 || arr[0]["error"] != "Failed to simulate batch response" {
		t.Errorf("batch fallback = %v", arr)
	}
}

func TestGenerate(t *testing.T) {
	t.Run("success joins stream chunks", func(t *testing.T) {
		p := testutil.NewReplyingProvider("m", "print(", "'hi')")
		res := NewClient(p).Generate(context.Background(), KindScript, "prompt text")

		if res.Err != nil || res.Failed() {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Text != "print('hi')" {
			t.Errorf("Text = %q", res.Text)
		}

		calls := p.Calls()
		if len(calls) != 1 {
			t.Fatalf("provider called %d times, want 1", len(calls))
		}
		if len(calls[0]) != 1 || calls[0][0].Role != model.RoleUser || calls[0][0].Content != "prompt text" {
			t.Errorf("sent %+v, want a single user message", calls[0])
		}
	})

	t.Run("failure becomes fallback and is logged", func(t *testing.T) {
		var buf bytes.Buffer
		boom := errors.New("401 unauthorized")
		p := testutil.NewFailingProvider("m", boom)

		res := NewClient(p, WithLogger(log.New(&buf, "", 0))).Generate(context.Background(), KindScript, "x")

		if res.Text != Fallback(KindScript) {
			t.Errorf("Text = %q, want script fallback", res.Text)
		}
		if !errors.Is(res.Err, boom) {
			t.Errorf("Err = %v, want wrapped boom", res.Err)
		}
		if !strings.Contains(buf.String(), "401 unauthorized") {
			t.Errorf("failure not logged: %q", buf.String())
		}
		if p.CallCount() != 1 {
			t.Errorf("provider called %d times, want exactly 1 (no retry)", p.CallCount())
		}
	})

	t.Run("empty reply becomes placeholder", func(t *testing.T) {
		p := testutil.NewReplyingProvider("m")
		res := NewClient(p).Generate(context.Background(), KindBatchSimulation, "x")

		if res.Text != "[]" {
			t.Errorf("Text = %q, want []", res.Text)
		}
		if !errors.Is(res.Err, ErrEmptyResponse) {
			t.Errorf("Err = %v, want ErrEmptyResponse", res.Err)
		}
	})

	t.Run("nil provider", func(t *testing.T) {
		var buf bytes.Buffer
		res := NewClient(nil, WithLogger(log.New(&buf, "", 0))).Generate(context.Background(), KindChat, "x")

		if res.Text != Fallback(KindChat) {
			t.Errorf("Text = %q, want chat fallback", res.Text)
		}
		if !errors.Is(res.Err, ErrNoProvider) {
			t.Errorf("Err = %v, want ErrNoProvider", res.Err)
		}
		if buf.Len() == 0 {
			t.Error("missing provider was not logged")
		}
	})
}

func TestGenerateTimeout(t *testing.T) {
	p := testutil.NewMockProvider("m")
	p.ChatFunc = func(ctx context.Context, messages []model.Message, callback model.StreamCallback) error {
		<-ctx.Done()
		return ctx.Err()
	}

	res := NewClient(p, WithTimeout(10*time.Millisecond), WithLogger(log.New(&bytes.Buffer{}, "", 0))).
		Generate(context.Background(), KindSingleSimulation, "x")

	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("Err = %v, want deadline exceeded", res.Err)
	}
	if res.Text != Fallback(KindSingleSimulation) {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestChatMessageOrder(t *testing.T) {
	p := testutil.NewReplyingProvider("m", "answer")
	history := []model.Message{
		{Role: model.RoleAssistant, Content: "greeting"},
		{Role: model.RoleUser, Content: "q1"},
		{Role: model.RoleAssistant, Content: "a1"},
	}

	res := NewClient(p).Chat(context.Background(), KindChat, "system text", history, "q2")
	if res.Text != "answer" {
		t.Fatalf("Text = %q", res.Text)
	}

	sent := p.Calls()[0]
	want := []struct{ role, content string }{
		{model.RoleSystem, "system text"},
		{model.RoleAssistant, "greeting"},
		{model.RoleUser, "q1"},
		{model.RoleAssistant, "a1"},
		{model.RoleUser, "q2"},
	}
	if len(sent) != len(want) {
		t.Fatalf("sent %d messages, want %d", len(sent), len(want))
	}
	for i, w := range want {
		if sent[i].Role != w.role || sent[i].Content != w.content {
			t.Errorf("message %d = {%s %q}, want {%s %q}", i, sent[i].Role, sent[i].Content, w.role, w.content)
		}
	}

	if len(history) != 3 {
		t.Errorf("caller history was modified: %d entries", len(history))
	}
}
