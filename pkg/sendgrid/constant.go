package sendgrid

const (
	// ErrMessageAPIKeyRequired is returned when the API key is missing.
	ErrMessageAPIKeyRequired = "sendgrid api key is required"

	// ErrMessageFromEmailRequired is returned when the sender address is
	// missing.
	ErrMessageFromEmailRequired = "sendgrid from email is required"
)
