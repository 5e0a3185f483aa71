package http

import (
	"time"

	"conversational-assistant/internal/assistant"
)

// --- Request DTOs ---

type chatReq struct {
	Message             string   `json:"message" binding:"required"`
	UserID              string   `json:"userId" binding:"required"`
	ConversationHistory []string `json:"conversationHistory"`
}

type voiceReq struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	UserMessage    string `json:"user_message" binding:"required"`
	AgentID        string `json:"agent_id"`
	Timestamp      string `json:"timestamp"`
	Metadata       struct {
		UserID string `json:"user_id"`
	} `json:"metadata"`
}

// smsReq mirrors Twilio's form-encoded message webhook.
type smsReq struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From" binding:"required"`
	To         string `form:"To"`
	Body       string `form:"Body" binding:"required"`
	NumMedia   string `form:"NumMedia"`
}

// --- Response DTOs ---

type chatResp struct {
	Message        string  `json:"message"`
	ActionTaken    *string `json:"action_taken"`
	IntentDetected string  `json:"intent_detected"`
	Timestamp      string  `json:"timestamp"`
}

func newChatResp(out assistant.ConverseOutput) chatResp {
	return chatResp{
		Message:        out.Message,
		ActionTaken:    actionTaken(out),
		IntentDetected: string(out.Intent.Intent),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

type voiceResp struct {
	Response       string  `json:"response"`
	ActionTaken    *string `json:"action_taken"`
	IntentDetected string  `json:"intent_detected"`
	Timestamp      string  `json:"timestamp"`
}

func newVoiceResp(out assistant.ConverseOutput) voiceResp {
	return voiceResp{
		Response:       out.Message,
		ActionTaken:    actionTaken(out),
		IntentDetected: string(out.Intent.Intent),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

// actionTaken names the dispatched action, null when the turn was plain chat.
func actionTaken(out assistant.ConverseOutput) *string {
	if !out.ActionTaken {
		return nil
	}
	name := string(out.Intent.Intent)
	return &name
}
