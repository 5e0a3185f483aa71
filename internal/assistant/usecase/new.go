package usecase

import (
	"time"

	"conversational-assistant/internal/account"
	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/intent/classifier"
	"conversational-assistant/internal/intent/fallback"
	"conversational-assistant/internal/scheduling"
	pkgLog "conversational-assistant/pkg/log"
	"conversational-assistant/pkg/sendgrid"
	"conversational-assistant/pkg/timeparse"
	"conversational-assistant/pkg/twilio"
)

type implUseCase struct {
	l        pkgLog.Logger
	rules    *classifier.Classifier
	fb       fallback.Classifier
	llm      fallback.Generator
	schedule scheduling.UseCase
	accounts account.Store
	resolver *timeparse.Resolver

	// email and sms are nil when the transport is not configured; the
	// dispatcher then answers with a connect-your-account message.
	email sendgrid.ISendGrid
	sms   twilio.ITwilio

	// now is swappable for tests.
	now func() time.Time
}

// New creates a new assistant UseCase instance. fb, llm, email and sms may
// be nil; the matching paths degrade to user-facing messages instead of
// failing.
func New(
	l pkgLog.Logger,
	rules *classifier.Classifier,
	fb fallback.Classifier,
	llm fallback.Generator,
	schedule scheduling.UseCase,
	accounts account.Store,
	email sendgrid.ISendGrid,
	sms twilio.ITwilio,
	resolver *timeparse.Resolver,
) *implUseCase {
	return &implUseCase{
		l:        l,
		rules:    rules,
		fb:       fb,
		llm:      llm,
		schedule: schedule,
		accounts: accounts,
		email:    email,
		sms:      sms,
		resolver: resolver,
		now:      time.Now,
	}
}

var _ assistant.UseCase = (*implUseCase)(nil)
