package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"conversational-assistant/config"
	"conversational-assistant/pkg/deepseek"
	"conversational-assistant/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped so one bad key
// does not take the whole service down.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
