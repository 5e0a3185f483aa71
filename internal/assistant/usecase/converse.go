package usecase

import (
	"context"
	"strings"

	"conversational-assistant/internal/assistant"
	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/model"
	"conversational-assistant/pkg/llmprovider"
)

// Converse classifies the message, dispatches the action when the classifier
// clears the channel's confidence gate, and otherwise answers as chat. The
// rule classifier always runs first; the LLM fallback only sees messages the
// rules could not place confidently.
func (u *implUseCase) Converse(ctx context.Context, sc model.Scope, input assistant.ConverseInput) (assistant.ConverseOutput, error) {
	gate := input.ConfidenceGate
	if gate <= 0 {
		gate = assistant.ChatConfidenceGate
	}

	res := u.rules.Classify(input.Message)
	if (res.NeedsAI || res.Confidence < gate) && u.fb != nil {
		fbRes, err := u.fb.Classify(ctx, input.Message, input.History)
		if err == nil && fbRes.Confidence >= res.Confidence {
			res = fbRes
		}
	}

	u.l.Infof(ctx, "%s: user %s intent %s confidence %.2f", LogPrefixConverse, sc.UserID, res.Intent, res.Confidence)

	if res.Intent != intent.IntentGeneralChat && res.Confidence >= gate {
		msg := u.Execute(ctx, sc, res)
		return assistant.ConverseOutput{
			Message:     msg,
			ActionTaken: true,
			Intent:      res,
		}, nil
	}

	return assistant.ConverseOutput{
		Message: u.chatReply(ctx, input),
		Intent:  res,
	}, nil
}

// chatReply generates a conversational answer, degrading to a canned line
// when no model is available. Chat must keep flowing even when the LLM is
// down.
func (u *implUseCase) chatReply(ctx context.Context, input assistant.ConverseInput) string {
	if u.llm == nil {
		return MsgChatFallback
	}

	messages := make([]llmprovider.Message, 0, len(input.History)+1)
	for _, turn := range input.History {
		role := "user"
		text := turn
		if rest, ok := strings.CutPrefix(turn, "assistant: "); ok {
			role, text = "assistant", rest
		} else if rest, ok := strings.CutPrefix(turn, "user: "); ok {
			text = rest
		}
		messages = append(messages, llmprovider.Message{Role: role, Text: text})
	}
	messages = append(messages, llmprovider.Message{Role: "user", Text: input.Message})

	resp, err := u.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      PromptChatSystem,
		Messages:    messages,
		Temperature: ChatTemperature,
		MaxTokens:   ChatMaxTokens,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		u.l.Warnf(ctx, "%s: chat generation failed: %v", LogPrefixConverse, err)
		return MsgChatFallback
	}
	return strings.TrimSpace(resp.Text)
}
