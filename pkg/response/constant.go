package response

// Error codes
const (
	SuccessCode             = 0
	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500
)

// Messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"
)

// Marshaling formats
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
