package http

import (
	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/account"
	"conversational-assistant/internal/assistant"
	"conversational-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	VoiceWebhook(c *gin.Context)
	SMSWebhook(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       assistant.UseCase
	accounts account.Store
	sessions *sessionStore
	security *SecurityValidator
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, accounts account.Store, security *SecurityValidator) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		accounts: accounts,
		sessions: newSessionStore(),
		security: security,
	}
}
