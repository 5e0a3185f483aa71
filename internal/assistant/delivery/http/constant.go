package http

// Log prefixes
const (
	LogPrefixChat  = "assistant.delivery.http.Chat"
	LogPrefixVoice = "assistant.delivery.http.VoiceWebhook"
	LogPrefixSMS   = "assistant.delivery.http.SMSWebhook"
)

// MsgSMSOnboarding is sent to phone numbers with no linked account. Unknown
// senders never reach the dispatcher.
const MsgSMSOnboarding = "Hi! I don't recognize this number yet. Create an account and link this phone number to start texting your assistant."
