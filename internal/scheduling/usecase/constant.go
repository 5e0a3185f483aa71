package usecase

// Log prefixes
const (
	LogPrefixCreateEvent     = "scheduling.usecase.CreateEvent"
	LogPrefixEventsForDay    = "scheduling.usecase.EventsForDay"
	LogPrefixCheckConflicts  = "scheduling.usecase.CheckConflicts"
	LogPrefixFindFreeTime    = "scheduling.usecase.FindFreeTime"
	LogPrefixSmartSchedule   = "scheduling.usecase.SmartSchedule"
	LogPrefixFindOptimalTime = "scheduling.usecase.FindOptimalTime"
	LogPrefixReschedule      = "scheduling.usecase.RescheduleEvent"
)
