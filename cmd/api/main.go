package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversational-assistant/config"
	_ "conversational-assistant/docs" // Swagger docs
	accountMemory "conversational-assistant/internal/account/memory"
	assistantUC "conversational-assistant/internal/assistant/usecase"
	"conversational-assistant/internal/httpserver"
	"conversational-assistant/internal/intent/classifier"
	"conversational-assistant/internal/intent/fallback"
	"conversational-assistant/internal/middleware"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling/repository"
	schedGcal "conversational-assistant/internal/scheduling/repository/gcal"
	schedMemory "conversational-assistant/internal/scheduling/repository/memory"
	schedUC "conversational-assistant/internal/scheduling/usecase"
	"conversational-assistant/pkg/gcalendar"
	"conversational-assistant/pkg/llmprovider"
	"conversational-assistant/pkg/log"
	"conversational-assistant/pkg/sendgrid"
	"conversational-assistant/pkg/timeparse"
	"conversational-assistant/pkg/twilio"

	assistantHTTP "conversational-assistant/internal/assistant/delivery/http"
)

// @title       Conversational Assistant API
// @description Personal assistant backend: intent classification, natural-language scheduling, email/SMS/call actions over chat, voice and SMS channels.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Assistant.Timezone)

	// 3. Time resolver
	resolver, err := timeparse.NewResolver(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		resolver, _ = timeparse.NewResolver("UTC")
	}

	// 4. Accounts
	accountStore := accountMemory.New(seedAccounts(cfg.Accounts))
	logger.Infof(ctx, "Loaded %d account(s)", len(cfg.Accounts))

	// 5. Event store: Google Calendar when credentials are configured,
	// in-memory otherwise.
	var eventStore repository.EventStore = schedMemory.New()
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available, using in-memory events: %v", calErr)
		} else {
			eventStore = schedGcal.New(calClient, calendarMapping(cfg), cfg.Assistant.Timezone)
			logger.Info(ctx, "✅ Google Calendar event store initialized")
		}
	}

	// 6. Scheduling UseCase
	scheduleUC := schedUC.New(logger, eventStore, resolver.Location())

	// 7. LLM provider chain (optional)
	var fb fallback.Classifier
	var gen fallback.Generator
	providers, llmErr := llmprovider.InitializeProviders(&cfg.LLM)
	if llmErr != nil {
		logger.Warnf(ctx, "LLM providers not available, rule-based classification only: %v", llmErr)
	} else {
		manager := llmprovider.NewManager(providers, managerConfig(cfg.LLM), logger)
		gen = manager
		fb = fallback.New(manager, logger)
		logger.Infof(ctx, "LLM fallback initialized with %d provider(s)", len(providers))
	}

	// 8. Action transports (optional)
	var email sendgrid.ISendGrid
	if cfg.SendGrid.APIKey != "" {
		email, err = sendgrid.New(sendgrid.Config{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
		})
		if err != nil {
			logger.Warnf(ctx, "SendGrid not available: %v", err)
			email = nil
		}
	}

	var sms twilio.ITwilio
	if cfg.Twilio.AccountSID != "" {
		sms, err = twilio.New(twilio.Config{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromPhone:  cfg.Twilio.FromPhone,
		})
		if err != nil {
			logger.Warnf(ctx, "Twilio not available: %v", err)
			sms = nil
		}
	}

	// 9. Assistant UseCase
	uc := assistantUC.New(logger, classifier.New(), fb, gen, scheduleUC, accountStore, email, sms, resolver)

	// 10. HTTP delivery
	security := assistantHTTP.NewSecurityValidator(assistantHTTP.SecurityConfig{
		TwilioAuthToken: cfg.Twilio.AuthToken,
		PublicURL:       cfg.Webhook.PublicURL,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	handler := assistantHTTP.New(logger, uc, accountStore, security)
	mw := middleware.New(logger, cfg)

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: handler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// seedAccounts converts configured accounts into domain accounts.
func seedAccounts(configured []config.AccountConfig) []model.Account {
	accounts := make([]model.Account, 0, len(configured))
	for _, a := range configured {
		accounts = append(accounts, model.Account{
			ID:       a.ID,
			Name:     a.Name,
			Email:    a.Email,
			Phone:    a.Phone,
			Timezone: a.Timezone,
			Permissions: model.Permissions{
				Email:    a.Perms["email"],
				Calendar: a.Perms["calendar"],
				Contacts: a.Perms["contacts"],
				SMS:      a.Perms["sms"],
				Calls:    a.Perms["calls"],
			},
		})
	}
	return accounts
}

// calendarMapping maps account IDs to their Google calendar IDs. Accounts
// without an explicit mapping fall through to the configured default.
func calendarMapping(cfg *config.Config) map[string]string {
	calendars := make(map[string]string)
	for _, a := range cfg.Accounts {
		if id := a.Extra["calendar_id"]; id != "" {
			calendars[a.ID] = id
		} else if cfg.GoogleCalendar.CalendarID != "" {
			calendars[a.ID] = cfg.GoogleCalendar.CalendarID
		}
	}
	return calendars
}

// managerConfig translates duration strings from the config file into the
// manager's typed config. Bad values fall back to safe defaults.
func managerConfig(cfg config.LLMConfig) *llmprovider.Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil || retryDelay <= 0 {
		retryDelay = time.Second
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil || maxTotal <= 0 {
		maxTotal = 60 * time.Second
	}
	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
