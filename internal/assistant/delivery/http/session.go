package http

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	sessionCapacity = 1000
	sessionTTL      = 30 * time.Minute

	// maxHistoryTurns bounds what one session carries into the classifier
	// and chat prompts.
	maxHistoryTurns = 10
)

// sessionStore keeps short-lived per-conversation history so webhook channels
// (which carry no history of their own) still get context. Idle sessions age
// out with their LRU entry.
type sessionStore struct {
	histories *expirable.LRU[string, []string]
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		histories: expirable.NewLRU[string, []string](sessionCapacity, nil, sessionTTL),
	}
}

// History returns the stored turns for a session, oldest first.
func (s *sessionStore) History(key string) []string {
	turns, _ := s.histories.Get(key)
	return turns
}

// Append records one user/assistant exchange.
func (s *sessionStore) Append(key, userText, assistantText string) {
	turns, _ := s.histories.Get(key)
	turns = append(turns, "user: "+userText, "assistant: "+assistantText)
	if len(turns) > maxHistoryTurns {
		turns = turns[len(turns)-maxHistoryTurns:]
	}
	s.histories.Add(key, turns)
}
