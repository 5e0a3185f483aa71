package assistant

import "conversational-assistant/internal/intent"

// ConverseInput is one inbound user message plus its conversation context.
type ConverseInput struct {
	Message string

	// History holds prior turns, oldest first, formatted "role: text".
	History []string

	// ConfidenceGate is the minimum classifier confidence required to
	// dispatch an action. Below it the message is handled as chat.
	ConfidenceGate float64
}

// ConverseOutput is the assistant's reply for one message.
type ConverseOutput struct {
	Message     string
	ActionTaken bool
	Intent      intent.Result
}
