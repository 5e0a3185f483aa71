package fallback_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/intent/fallback"
	"conversational-assistant/pkg/llmprovider"
)

type mockGenerator struct {
	text       string
	err        error
	lastPrompt string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if len(req.Messages) > 0 {
		m.lastPrompt = req.Messages[0].Text
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestClassify_ValidJSON(t *testing.T) {
	gen := &mockGenerator{text: `{"intent":"create_event","confidence":0.82,"parameters":{"title":"sync","time":"tomorrow at 10am"}}`}
	c := fallback.New(gen, nopLogger{})

	res, err := c.Classify(context.Background(), "can we get something on the books for tomorrow morning?", nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != intent.IntentCreateEvent {
		t.Errorf("expected create_event, got %s", res.Intent)
	}
	if res.Confidence != 0.82 {
		t.Errorf("expected confidence 0.82, got %v", res.Confidence)
	}
	if res.Parameters["time"] != "tomorrow at 10am" {
		t.Errorf("expected time parameter, got %q", res.Parameters["time"])
	}
}

func TestClassify_StripsCodeFences(t *testing.T) {
	gen := &mockGenerator{text: "```json\n{\"intent\":\"general_chat\",\"confidence\":0.9}\n```"}
	c := fallback.New(gen, nopLogger{})

	res, err := c.Classify(context.Background(), "hey", nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != intent.IntentGeneralChat || res.Confidence != 0.9 {
		t.Errorf("fenced JSON not parsed: %+v", res)
	}
}

func TestClassify_LLMErrorDegrades(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider unavailable")}
	c := fallback.New(gen, nopLogger{})

	res, err := c.Classify(context.Background(), "anything", nil)
	if err != nil {
		t.Fatalf("Classify must not propagate LLM errors, got %v", err)
	}
	if res.Intent != intent.IntentGeneralChat {
		t.Errorf("expected general_chat fallback, got %s", res.Intent)
	}
	if res.Confidence != 0.5 {
		t.Errorf("expected fallback confidence 0.5, got %v", res.Confidence)
	}
}

func TestClassify_MalformedJSONDegrades(t *testing.T) {
	gen := &mockGenerator{text: "sure thing! the user wants to send an email"}
	c := fallback.New(gen, nopLogger{})

	res, err := c.Classify(context.Background(), "anything", nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != intent.IntentGeneralChat || res.Confidence != 0.5 {
		t.Errorf("expected general_chat/0.5, got %+v", res)
	}
}

func TestClassify_UnknownIntentDegrades(t *testing.T) {
	gen := &mockGenerator{text: `{"intent":"order_pizza","confidence":0.99}`}
	c := fallback.New(gen, nopLogger{})

	res, err := c.Classify(context.Background(), "anything", nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Intent != intent.IntentGeneralChat || res.Confidence != 0.5 {
		t.Errorf("expected general_chat/0.5, got %+v", res)
	}
}

func TestClassify_HistoryInPrompt(t *testing.T) {
	gen := &mockGenerator{text: `{"intent":"general_chat","confidence":0.7}`}
	c := fallback.New(gen, nopLogger{})

	history := []string{"user: what about friday?", "assistant: Friday looks open."}
	if _, err := c.Classify(context.Background(), "book it then", history); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "what about friday?") {
		t.Errorf("expected history in prompt, got %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "book it then") {
		t.Errorf("expected message in prompt, got %q", gen.lastPrompt)
	}
}
