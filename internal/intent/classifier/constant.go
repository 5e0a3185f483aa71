package classifier

// Per-intent confidence scores. The dispatcher's routing gate compares against
// these, so they are fixed constants rather than tunables.
const (
	ConfidenceEmail             = 0.95
	ConfidenceReminder          = 0.9
	ConfidenceCreateEvent       = 0.85
	ConfidenceReschedule        = 0.9
	ConfidenceCheckSchedule     = 0.9
	ConfidenceCheckAvailability = 0.9
	ConfidenceCheckConflicts    = 0.85
	ConfidenceFindTime          = 0.8
	ConfidenceSendSMS           = 0.9
	ConfidenceMakeCall          = 0.9
	ConfidenceGeneralChat       = 0.3
)

// Default event title when nothing usable is extracted.
const DefaultEventTitle = "Meeting"

// Max derived subject length before truncation.
const MaxSubjectLen = 30
