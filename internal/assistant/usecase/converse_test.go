package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/intent/classifier"
	"conversational-assistant/internal/intent/fallback"
	"conversational-assistant/internal/model"
)

func newTestConverse(fb *mockFallback, gen *mockGenerator) (*implUseCase, *mockEmail) {
	email := &mockEmail{}
	var llm fallback.Generator
	if gen != nil {
		llm = gen
	}
	u := New(
		&mockLogger{},
		classifier.New(),
		fb,
		llm,
		&mockScheduler{},
		&mockAccounts{account: model.Account{ID: "user-1", Permissions: allPerms}},
		email,
		&mockSMS{},
		mustResolver(),
	)
	u.now = func() time.Time { return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) }
	return u, email
}

func TestConverse_RuleMatchDispatches(t *testing.T) {
	fb := &mockFallback{}
	u, email := newTestConverse(fb, nil)

	out, err := u.Converse(context.Background(), model.Scope{UserID: "user-1"}, assistant.ConverseInput{
		Message:        "send an email to john@example.com about the report",
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.ActionTaken {
		t.Fatalf("expected an action, got %+v", out)
	}
	if out.Intent.Intent != intent.IntentSendEmail {
		t.Errorf("intent = %s", out.Intent.Intent)
	}
	if email.last == nil {
		t.Error("email transport not called")
	}
	if fb.called {
		t.Error("fallback consulted despite a confident rule match")
	}
}

func TestConverse_FallbackRescuesUnmatchedMessage(t *testing.T) {
	fb := &mockFallback{result: intent.Result{
		Intent:     intent.IntentCreateEvent,
		Confidence: 0.85,
		Parameters: map[string]string{"title": "Coffee", "time": "tomorrow at 10am"},
	}}
	u, _ := newTestConverse(fb, nil)

	out, err := u.Converse(context.Background(), model.Scope{UserID: "user-1"}, assistant.ConverseInput{
		Message:        "could we maybe do that coffee thing tomorrow morning around ten",
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.called {
		t.Fatal("fallback classifier not consulted")
	}
	if !out.ActionTaken || out.Intent.Intent != intent.IntentCreateEvent {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestConverse_LowConfidenceStaysChat(t *testing.T) {
	fb := &mockFallback{result: intent.Result{
		Intent:     intent.IntentSendEmail,
		Confidence: 0.7,
		Parameters: map[string]string{"to": "john@example.com"},
	}}
	u, email := newTestConverse(fb, &mockGenerator{text: "Sure, tell me more."})

	out, err := u.Converse(context.Background(), model.Scope{UserID: "user-1"}, assistant.ConverseInput{
		Message:        "hmm maybe email john later",
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ActionTaken {
		t.Error("action dispatched below the confidence gate")
	}
	if email.last != nil {
		t.Error("email sent below the confidence gate")
	}
	if out.Message != "Sure, tell me more." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestConverse_SMSGateIsLower(t *testing.T) {
	fb := &mockFallback{result: intent.Result{
		Intent:     intent.IntentCheckSchedule,
		Confidence: 0.7,
	}}
	u, _ := newTestConverse(fb, nil)

	out, err := u.Converse(context.Background(), model.Scope{UserID: "user-1"}, assistant.ConverseInput{
		Message:        "sched tmrw?",
		ConfidenceGate: assistant.SMSConfidenceGate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.ActionTaken {
		t.Errorf("0.7 should clear the SMS gate, got %+v", out)
	}
}

func TestConverse_ChatDegradesWhenModelDown(t *testing.T) {
	fb := &mockFallback{result: intent.Result{
		Intent:     intent.IntentGeneralChat,
		Confidence: 0.5,
	}}
	u, _ := newTestConverse(fb, &mockGenerator{err: errors.New("model offline")})

	out, err := u.Converse(context.Background(), model.Scope{UserID: "user-1"}, assistant.ConverseInput{
		Message:        "how's the weather?",
		ConfidenceGate: assistant.ChatConfidenceGate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ActionTaken {
		t.Error("chat message treated as an action")
	}
	if !strings.Contains(out.Message, "help") {
		t.Errorf("expected the canned reply, got %q", out.Message)
	}
}
