package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type twilioImpl struct {
	config Config
}

func newClient(cfg Config) (*twilioImpl, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &twilioImpl{config: cfg}, nil
}

func (t *twilioImpl) SendSMS(ctx context.Context, to, body string) (string, error) {
	data := url.Values{}
	data.Set("From", t.config.FromPhone)
	data.Set("To", to)
	data.Set("Body", body)

	return t.post(ctx, "Messages.json", data)
}

func (t *twilioImpl) MakeCall(ctx context.Context, to, message string) (string, error) {
	data := url.Values{}
	data.Set("From", t.config.FromPhone)
	data.Set("To", to)
	data.Set("Twiml", fmt.Sprintf("<Response><Say>%s</Say></Response>", escapeTwiml(message)))

	return t.post(ctx, "Calls.json", data)
}

func (t *twilioImpl) post(ctx context.Context, resource string, data url.Values) (string, error) {
	reqURL := fmt.Sprintf("%s/Accounts/%s/%s", t.config.BaseURL, t.config.AccountSID, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(t.config.AccountSID, t.config.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.config.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("twilio error: %s (code: %d)", result.ErrorMessage, result.ErrorCode)
	}

	return result.SID, nil
}

// escapeTwiml escapes the XML-significant characters in spoken text.
func escapeTwiml(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
