package http

import (
	"github.com/gin-gonic/gin"

	"conversational-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Webhooks are
// authenticated by signature and rate limit, not by the API middleware.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	api := r.Group("/api")
	{
		api.POST("/chat", mw.RateLimit(), h.Chat)
	}

	webhooks := r.Group("/webhook")
	{
		webhooks.POST("/voice", h.VoiceWebhook)
		webhooks.POST("/sms", h.SMSWebhook)
	}
}
