package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestGenerateContent_FirstProviderSucceeds(t *testing.T) {
	want := &Response{Text: "hello", ProviderName: "gemini"}
	primary := &mockProvider{name: "gemini", model: "gemini-2.5-flash", response: want}
	secondary := &mockProvider{name: "deepseek", model: "deepseek-chat"}

	m := NewManager([]Provider{primary, secondary}, newTestConfig(), &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp != want {
		t.Errorf("expected primary response, got %+v", resp)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called when primary succeeds, called %d times", secondary.callCount)
	}
}

func TestGenerateContent_FallsBackToSecondary(t *testing.T) {
	want := &Response{Text: "fallback", ProviderName: "deepseek"}
	primary := &mockProvider{name: "gemini", model: "gemini-2.5-flash", shouldFail: true}
	secondary := &mockProvider{name: "deepseek", model: "deepseek-chat", response: want}

	logger := &mockLogger{}
	m := NewManager([]Provider{primary, secondary}, newTestConfig(), logger)

	resp, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp != want {
		t.Errorf("expected fallback response, got %+v", resp)
	}
	if primary.callCount != 2 {
		t.Errorf("expected 2 retry attempts on primary, got %d", primary.callCount)
	}
	if len(logger.warnMessages) == 0 {
		t.Errorf("expected a warning logged for the failed provider")
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "gemini", shouldFail: true}
	secondary := &mockProvider{name: "deepseek", shouldFail: true}

	m := NewManager([]Provider{primary, secondary}, newTestConfig(), &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "gemini", shouldFail: true}
	secondary := &mockProvider{name: "deepseek", response: &Response{Text: "unused"}}

	cfg := newTestConfig()
	cfg.FallbackEnabled = false
	m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called with fallback disabled, called %d times", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	m := NewManager(nil, newTestConfig(), &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_ContextCancelled(t *testing.T) {
	primary := &mockProvider{name: "gemini", shouldFail: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager([]Provider{primary}, newTestConfig(), &mockLogger{})

	_, err := m.GenerateContent(ctx, &Request{})
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
