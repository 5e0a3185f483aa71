package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/pkg/llmprovider"
	"conversational-assistant/pkg/sendgrid"
	"conversational-assistant/pkg/timeparse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockAccounts serves one fixed permission set.
type mockAccounts struct {
	account model.Account
	err     error
}

func (m *mockAccounts) Get(ctx context.Context, userID string) (model.Account, error) {
	return m.account, m.err
}

func (m *mockAccounts) GetByPhone(ctx context.Context, phone string) (model.Account, error) {
	return m.account, m.err
}

func (m *mockAccounts) GetPermissions(ctx context.Context, userID string) (model.Permissions, error) {
	return m.account.Permissions, m.err
}

// mockScheduler implements scheduling.UseCase with overridable functions.
// Unset functions return zero values.
type mockScheduler struct {
	createFn      func(scheduling.CreateEventInput) (model.CalendarEvent, error)
	eventsFn      func(time.Time) ([]model.CalendarEvent, error)
	conflictsFn   func(start, end time.Time) (scheduling.ConflictResult, error)
	freeTimeFn    func(duration time.Duration, searchStart, searchEnd time.Time) ([]time.Time, error)
	smartFn       func(scheduling.SmartScheduleInput) (scheduling.SmartScheduleOutput, error)
	optimalFn     func(duration time.Duration) (scheduling.OptimalTimeOutput, error)
	rescheduleFn  func(eventID string, newStart time.Time, checkConflicts bool) (scheduling.RescheduleOutput, error)
	createdEvents []scheduling.CreateEventInput
}

func (m *mockScheduler) CreateEvent(ctx context.Context, sc model.Scope, input scheduling.CreateEventInput) (model.CalendarEvent, error) {
	m.createdEvents = append(m.createdEvents, input)
	if m.createFn != nil {
		return m.createFn(input)
	}
	return model.CalendarEvent{ID: "ev-1", Title: input.Title, Start: input.Start, End: input.End}, nil
}

func (m *mockScheduler) EventsForDay(ctx context.Context, sc model.Scope, day time.Time) ([]model.CalendarEvent, error) {
	if m.eventsFn != nil {
		return m.eventsFn(day)
	}
	return nil, nil
}

func (m *mockScheduler) CheckConflicts(ctx context.Context, sc model.Scope, start, end time.Time) (scheduling.ConflictResult, error) {
	if m.conflictsFn != nil {
		return m.conflictsFn(start, end)
	}
	return scheduling.ConflictResult{}, nil
}

func (m *mockScheduler) FindFreeTime(ctx context.Context, sc model.Scope, duration time.Duration, searchStart, searchEnd time.Time) ([]time.Time, error) {
	if m.freeTimeFn != nil {
		return m.freeTimeFn(duration, searchStart, searchEnd)
	}
	return nil, nil
}

func (m *mockScheduler) SmartSchedule(ctx context.Context, sc model.Scope, input scheduling.SmartScheduleInput) (scheduling.SmartScheduleOutput, error) {
	if m.smartFn != nil {
		return m.smartFn(input)
	}
	return scheduling.SmartScheduleOutput{}, nil
}

func (m *mockScheduler) FindOptimalTime(ctx context.Context, sc model.Scope, duration time.Duration, attendees []string, prefs scheduling.Preferences) (scheduling.OptimalTimeOutput, error) {
	if m.optimalFn != nil {
		return m.optimalFn(duration)
	}
	return scheduling.OptimalTimeOutput{}, nil
}

func (m *mockScheduler) RescheduleEvent(ctx context.Context, sc model.Scope, eventID string, newStart time.Time, checkConflicts bool) (scheduling.RescheduleOutput, error) {
	if m.rescheduleFn != nil {
		return m.rescheduleFn(eventID, newStart, checkConflicts)
	}
	return scheduling.RescheduleOutput{}, nil
}

// mockEmail records the last send.
type mockEmail struct {
	last *sendgrid.SendRequest
	err  error
}

func (m *mockEmail) Send(ctx context.Context, req *sendgrid.SendRequest) error {
	m.last = req
	return m.err
}

// mockSMS records the last text and call.
type mockSMS struct {
	lastTo, lastBody string
	callTo, callMsg  string
	err              error
}

func (m *mockSMS) SendSMS(ctx context.Context, to, body string) (string, error) {
	m.lastTo, m.lastBody = to, body
	if m.err != nil {
		return "", m.err
	}
	return "SM123", nil
}

func (m *mockSMS) MakeCall(ctx context.Context, to, message string) (string, error) {
	m.callTo, m.callMsg = to, message
	if m.err != nil {
		return "", m.err
	}
	return "CA123", nil
}

// mockFallback returns a fixed classification.
type mockFallback struct {
	result intent.Result
	err    error
	called bool
}

func (m *mockFallback) Classify(ctx context.Context, message string, history []string) (intent.Result, error) {
	m.called = true
	return m.result, m.err
}

// mockGenerator returns a fixed chat completion.
type mockGenerator struct {
	text string
	err  error
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

func mustResolver() *timeparse.Resolver {
	r, err := timeparse.NewResolver("UTC")
	if err != nil {
		panic(err)
	}
	return r
}
