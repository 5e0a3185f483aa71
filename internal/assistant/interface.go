package assistant

import (
	"context"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Converse classifies one message and either dispatches the action or
	// answers conversationally.
	Converse(ctx context.Context, sc model.Scope, input ConverseInput) (ConverseOutput, error)

	// Execute runs one classified intent and returns a user-facing result
	// string. It never returns an error: failures come back as a
	// "❌"-prefixed message, successes as "✅", so every transport can
	// treat the result uniformly.
	Execute(ctx context.Context, sc model.Scope, res intent.Result) string
}
