package usecase

// Log prefixes
const (
	LogPrefixConverse = "assistant.usecase.Converse"
	LogPrefixExecute  = "assistant.usecase.Execute"
)

// Connect-account messages, one per permission family.
const (
	MsgConnectEmail    = "❌ Your email account isn't connected. Connect it in settings to send emails."
	MsgConnectCalendar = "❌ Your calendar isn't connected. Connect it in settings to manage your schedule."
	MsgConnectSMS      = "❌ Text messaging isn't enabled for your account. Enable it in settings to send texts."
	MsgConnectCalls    = "❌ Calling isn't enabled for your account. Enable it in settings to place calls."
)

// Corrective messages for missing or unusable input.
const (
	MsgMissingEmailRecipient = "❌ Who should I email? Please include a recipient address."
	MsgMissingReminderTask   = "❌ What should I remind you about?"
	MsgMissingEventTime      = "❌ When should I schedule that? Try something like \"tomorrow at 3pm\"."
	MsgMissingReminderTime   = "❌ When should I remind you? Try something like \"in 20 minutes\" or \"tomorrow at 9am\"."
	MsgMissingEventID        = "❌ Which event should I move? Please include the event id."
	MsgMissingSMSRecipient   = "❌ Who should I text? Please include a phone number."
	MsgMissingSMSBody        = "❌ What should the text say?"
	MsgMissingCallRecipient  = "❌ Who should I call? Please include a phone number."

	MsgUnparseableTime = "❌ I couldn't understand the time %q. Try phrases like \"tomorrow at 3pm\", \"in 20 minutes\" or \"friday 10:30\"."
	MsgPastTime        = "❌ %q works out to a time in the past. Please give me a future time."
)

// MsgGenericAck is the reply for intents the dispatcher cannot execute. The
// assistant must never claim success for an action it did not perform.
const MsgGenericAck = "I understood what you're asking, but I don't know how to do that yet."

// MsgChatFallback is used when the conversational model is unavailable.
const MsgChatFallback = "I'm here to help with your email, texts, calls and calendar. What can I do for you?"

// PromptChatSystem drives conversational (non-action) replies.
const PromptChatSystem = `You are a friendly personal assistant. You help the user with email, text messages, phone calls, reminders and their calendar. Answer briefly and conversationally. If the user seems to want an action you cannot take from chat alone, tell them how to phrase it.`

// Chat generation bounds.
const (
	ChatTemperature = 0.7
	ChatMaxTokens   = 512
)
