package fallback

import (
	"context"

	"conversational-assistant/internal/intent"
	"conversational-assistant/pkg/llmprovider"
	"conversational-assistant/pkg/log"
)

// Classifier is the interface for LLM-backed intent classification
type Classifier interface {
	Classify(ctx context.Context, message string, conversationHistory []string) (intent.Result, error)
}

// Generator abstracts the LLM provider manager for testing
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMClassifier classifies user intent using LLM when the rule-based
// classifier is not confident enough
type LLMClassifier struct {
	llm Generator
	l   log.Logger
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm: llm,
		l:   l,
	}
}
