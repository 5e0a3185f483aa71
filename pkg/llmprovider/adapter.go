package llmprovider

import (
	"context"

	"conversational-assistant/pkg/deepseek"
	"conversational-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		System:      req.System,
		Messages:    make([]gemini.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		role := msg.Role
		// Gemini names the assistant role "model".
		if role == "assistant" {
			role = "model"
		}
		geminiReq.Messages[i] = gemini.Message{Role: role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		System:      req.System,
		Messages:    make([]deepseek.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range req.Messages {
		deepseekReq.Messages[i] = deepseek.Message{Role: msg.Role, Text: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "deepseek",
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}
