package sendgrid

import "errors"

// Config holds the configuration for the SendGrid client.
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(ErrMessageAPIKeyRequired)
	}
	if c.FromEmail == "" {
		return errors.New(ErrMessageFromEmailRequired)
	}
	return nil
}

// SendRequest is one outbound email.
type SendRequest struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}
