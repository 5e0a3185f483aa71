package httpserver

import (
	"context"

	"conversational-assistant/internal/model"

	assistantHTTP "conversational-assistant/internal/assistant/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	// CORS recovery
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.assistantHandler != nil {
		assistantHTTP.RegisterRoutes(srv.gin, srv.assistantHandler, srv.mw)
		srv.l.Infof(ctx, "Assistant routes registered: POST /api/chat, POST /webhook/voice, POST /webhook/sms")
	} else {
		srv.l.Infof(ctx, "Assistant handler not configured, skipping assistant routes")
	}

	return nil
}
