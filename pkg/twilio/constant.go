package twilio

import "time"

const (
	// DefaultBaseURL is the Twilio REST API root.
	DefaultBaseURL = "https://api.twilio.com/2010-04-01"

	// DefaultTimeout is the default HTTP timeout for API calls.
	DefaultTimeout = 30 * time.Second
)

const (
	// ErrMessageCredentialsRequired is returned when account credentials
	// are missing.
	ErrMessageCredentialsRequired = "twilio account sid and auth token are required"

	// ErrMessageFromPhoneRequired is returned when the sender number is
	// missing.
	ErrMessageFromPhoneRequired = "twilio from phone number is required"
)
