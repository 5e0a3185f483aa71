package deepseek

// Config holds the DeepSeek client configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Request is a text generation request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one conversation turn. Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

// Response is the generated text plus token accounting.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Wire types for the chat completions endpoint.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
