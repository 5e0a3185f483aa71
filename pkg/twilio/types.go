package twilio

import (
	"errors"
	"net/http"
)

// Config holds the configuration for the Twilio client.
type Config struct {
	AccountSID string
	AuthToken  string
	FromPhone  string

	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// HTTPClient is optional, defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.AccountSID == "" || c.AuthToken == "" {
		return errors.New(ErrMessageCredentialsRequired)
	}
	if c.FromPhone == "" {
		return errors.New(ErrMessageFromPhoneRequired)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// messageResponse is the Twilio API response for messages and calls.
type messageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
