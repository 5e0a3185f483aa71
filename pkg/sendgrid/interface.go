package sendgrid

import "context"

// ISendGrid defines the interface for sending email through SendGrid.
type ISendGrid interface {
	// Send delivers one email. A non-2xx API status is returned as an
	// error carrying the response body.
	Send(ctx context.Context, req *SendRequest) error
}

// New creates a new SendGrid client instance.
func New(cfg Config) (ISendGrid, error) {
	return newClient(cfg)
}
