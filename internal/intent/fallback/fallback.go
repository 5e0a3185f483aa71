package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"conversational-assistant/internal/intent"
	"conversational-assistant/pkg/llmprovider"
)

// llmOutput is the structured response expected from the LLM
type llmOutput struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Parameters map[string]string `json:"parameters"`
}

// Classify determines user intent from message
// Convention: Method accepts context.Context as first parameter
func (c *LLMClassifier) Classify(ctx context.Context, message string, conversationHistory []string) (intent.Result, error) {
	historyContext := ""
	if len(conversationHistory) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range conversationHistory {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	prompt := historyContext + fmt.Sprintf(PromptClassifySystem, message)

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	})
	if err != nil {
		// An unreachable LLM must not break the conversation.
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallbackResult(), nil
	}

	responseText := stripCodeFences(resp.Text)
	if responseText == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackResult(), nil
	}

	var output llmOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallbackResult(), nil
	}

	parsed := intent.Intent(output.Intent)
	if !parsed.Valid() {
		c.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, output.Intent)
		return fallbackResult(), nil
	}

	confidence := output.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = FallbackConfidence
	}

	c.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f)", LogPrefixClassify, parsed, confidence)
	return intent.Result{
		Intent:     parsed,
		Confidence: confidence,
		Parameters: output.Parameters,
	}, nil
}

// fallbackResult is the safe answer when the LLM cannot be trusted
func fallbackResult() intent.Result {
	return intent.Result{
		Intent:     intent.IntentGeneralChat,
		Confidence: FallbackConfidence,
	}
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
