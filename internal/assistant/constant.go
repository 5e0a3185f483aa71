package assistant

// Confidence gates per channel. SMS commands are short and telegraphic, so
// the bar is lower.
const (
	ChatConfidenceGate = 0.8
	SMSConfidenceGate  = 0.6
)
