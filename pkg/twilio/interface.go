package twilio

import "context"

// ITwilio defines the interface for sending SMS and placing calls through
// the Twilio REST API.
type ITwilio interface {
	// SendSMS delivers one text message and returns the message SID.
	SendSMS(ctx context.Context, to, body string) (string, error)

	// MakeCall places an outbound call that speaks the given message, and
	// returns the call SID.
	MakeCall(ctx context.Context, to, message string) (string, error)
}

// New creates a new Twilio client instance.
func New(cfg Config) (ITwilio, error) {
	return newClient(cfg)
}
