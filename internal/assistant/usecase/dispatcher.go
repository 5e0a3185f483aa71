package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/pkg/sendgrid"
)

// Execute runs one classified intent. Per-branch order is fixed: permission
// check, parameter normalization, time resolution, future-time validation,
// then the side-effecting call. No side effect may happen before the
// permission check passes.
func (u *implUseCase) Execute(ctx context.Context, sc model.Scope, res intent.Result) string {
	perms, err := u.accounts.GetPermissions(ctx, sc.UserID)
	if err != nil {
		u.l.Errorf(ctx, "%s: permissions for %s: %v", LogPrefixExecute, sc.UserID, err)
		return fmt.Sprintf("❌ I couldn't check your account permissions: %v", err)
	}

	switch res.Intent {
	case intent.IntentSendEmail:
		return u.execSendEmail(ctx, perms, res)
	case intent.IntentSetReminder:
		return u.execSetReminder(ctx, sc, perms, res)
	case intent.IntentCreateEvent:
		return u.execCreateEvent(ctx, sc, perms, res)
	case intent.IntentReschedule:
		return u.execReschedule(ctx, sc, perms, res)
	case intent.IntentCheckSchedule:
		return u.execCheckSchedule(ctx, sc, perms, res)
	case intent.IntentCheckAvailability:
		return u.execCheckAvailability(ctx, sc, perms, res)
	case intent.IntentCheckConflicts:
		return u.execCheckConflicts(ctx, sc, perms, res)
	case intent.IntentFindTime:
		return u.execFindTime(ctx, sc, perms, res)
	case intent.IntentSendSMS:
		return u.execSendSMS(ctx, perms, res)
	case intent.IntentMakeCall:
		return u.execMakeCall(ctx, perms, res)
	}

	return MsgGenericAck
}

func (u *implUseCase) execSendEmail(ctx context.Context, perms model.Permissions, res intent.Result) string {
	if !perms.Email || u.email == nil {
		return MsgConnectEmail
	}

	to := res.Param("recipient", "to", "email")
	if to == "" {
		return MsgMissingEmailRecipient
	}
	subject := res.Param("subject")
	if subject == "" {
		subject = "Message from your assistant"
	}
	body := res.Param("body", "message", "content")
	if body == "" {
		body = subject
	}

	if err := u.email.Send(ctx, &sendgrid.SendRequest{To: to, Subject: subject, Body: body}); err != nil {
		u.l.Errorf(ctx, "%s: send email to %s: %v", LogPrefixExecute, to, err)
		return fmt.Sprintf("❌ I couldn't send the email: %v", err)
	}
	return fmt.Sprintf("✅ Email sent to %s.", to)
}

func (u *implUseCase) execSetReminder(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	task := res.Param("reminder", "task", "title", "message")
	if task == "" {
		return MsgMissingReminderTask
	}
	timeText := res.Param("time", "when", "startTime")
	if timeText == "" {
		return MsgMissingReminderTime
	}

	at, msg := u.resolveFuture(timeText)
	if msg != "" {
		return msg
	}

	_, err := u.schedule.CreateEvent(ctx, sc, scheduling.CreateEventInput{
		Title: "Reminder: " + task,
		Start: at,
		End:   at.Add(scheduling.ReminderDuration),
	})
	if err != nil {
		u.l.Errorf(ctx, "%s: set reminder: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't set the reminder: %v", err)
	}
	return fmt.Sprintf("✅ Reminder set %s: %s.", u.resolver.FormatForUser(at, u.now()), task)
}

func (u *implUseCase) execCreateEvent(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	timeText := res.Param("time", "startTime", "when")
	if timeText == "" {
		return MsgMissingEventTime
	}
	start, msg := u.resolveFuture(timeText)
	if msg != "" {
		return msg
	}

	title := res.Param("title", "event", "name")
	if title == "" {
		title = "Meeting"
	}
	duration := u.paramDuration(res, scheduling.DefaultEventDuration)
	end := start.Add(duration)

	conflicts, err := u.schedule.CheckConflicts(ctx, sc, start, end)
	if err != nil {
		u.l.Errorf(ctx, "%s: conflict check: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't check your calendar: %v", err)
	}
	if conflicts.HasConflicts {
		reply := fmt.Sprintf("❌ That time conflicts with %s.", joinEventTitles(conflicts.Conflicts))
		if len(conflicts.Suggestions) > 0 {
			reply += " Free instead: " + u.joinTimes(conflicts.Suggestions) + "."
		}
		return reply
	}

	ev, err := u.schedule.CreateEvent(ctx, sc, scheduling.CreateEventInput{
		Title: title,
		Start: start,
		End:   end,
	})
	if err != nil {
		u.l.Errorf(ctx, "%s: create event: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't create the event: %v", err)
	}
	return fmt.Sprintf("✅ Scheduled %q %s.", ev.Title, u.resolver.FormatForUser(start, u.now()))
}

func (u *implUseCase) execReschedule(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	eventID := res.Param("eventId", "event_id", "id")
	if eventID == "" {
		return MsgMissingEventID
	}
	timeText := res.Param("time", "newTime", "startTime", "when")
	if timeText == "" {
		return MsgMissingEventTime
	}
	newStart, msg := u.resolveFuture(timeText)
	if msg != "" {
		return msg
	}

	out, err := u.schedule.RescheduleEvent(ctx, sc, eventID, newStart, true)
	if err != nil {
		if errors.Is(err, scheduling.ErrEventNotFound) {
			return fmt.Sprintf("❌ I couldn't find an event with id %s.", eventID)
		}
		u.l.Errorf(ctx, "%s: reschedule %s: %v", LogPrefixExecute, eventID, err)
		return fmt.Sprintf("❌ I couldn't move the event: %v", err)
	}
	if !out.Success {
		return fmt.Sprintf("❌ The new time conflicts with %s. I left the event where it was.", joinEventTitles(out.Conflicts))
	}
	return fmt.Sprintf("✅ Rescheduled %q: now %s.", out.Event.Title, u.resolver.FormatForUser(newStart, u.now()))
}

func (u *implUseCase) execCheckSchedule(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	dayText := res.Param("day", "date")
	day, err := u.resolver.ResolveDay(dayText, u.now())
	if err != nil {
		return fmt.Sprintf("❌ I don't recognize the day %q.", dayText)
	}

	events, err := u.schedule.EventsForDay(ctx, sc, day)
	if err != nil {
		u.l.Errorf(ctx, "%s: events for day: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't read your calendar: %v", err)
	}
	label := dayLabel(dayText)
	if len(events) == 0 {
		return fmt.Sprintf("✅ Your schedule for %s is clear.", label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ You have %d event(s) %s:", len(events), label)
	for _, ev := range events {
		fmt.Fprintf(&b, "\n• %s – %s: %s", u.clock(ev.Start), u.clock(ev.End), ev.Title)
	}
	return b.String()
}

func (u *implUseCase) execCheckAvailability(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	timeText := res.Param("time", "when")
	dayText := res.Param("day", "date")

	// Without a clock time this is a whole-day question.
	if timeText == "" {
		return u.execCheckSchedule(ctx, sc, perms, res)
	}

	combined := strings.TrimSpace(dayText + " " + timeText)
	at, err := u.resolver.Resolve(combined, u.now())
	if err != nil {
		return fmt.Sprintf(MsgUnparseableTime, combined)
	}

	result, err := u.schedule.CheckConflicts(ctx, sc, at, at.Add(scheduling.DefaultEventDuration))
	if err != nil {
		u.l.Errorf(ctx, "%s: availability check: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't check your calendar: %v", err)
	}
	if !result.HasConflicts {
		return fmt.Sprintf("✅ You're free %s.", u.resolver.FormatForUser(at, u.now()))
	}

	reply := fmt.Sprintf("❌ You're busy then: %s.", joinEventTitles(result.Conflicts))
	if len(result.Suggestions) > 0 {
		reply += " Free instead: " + u.joinTimes(result.Suggestions) + "."
	}
	return reply
}

func (u *implUseCase) execCheckConflicts(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	dayText := res.Param("day", "date")
	day, err := u.resolver.ResolveDay(dayText, u.now())
	if err != nil {
		return fmt.Sprintf("❌ I don't recognize the day %q.", dayText)
	}

	events, err := u.schedule.EventsForDay(ctx, sc, day)
	if err != nil {
		u.l.Errorf(ctx, "%s: events for day: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't read your calendar: %v", err)
	}

	var clashes []string
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if events[j].Overlaps(events[i].Start, events[i].End) {
				clashes = append(clashes, fmt.Sprintf("%q overlaps %q", events[i].Title, events[j].Title))
			}
		}
	}
	label := dayLabel(dayText)
	if len(clashes) == 0 {
		return fmt.Sprintf("✅ No conflicts %s.", label)
	}
	return fmt.Sprintf("❌ Found %d conflict(s) %s: %s.", len(clashes), label, strings.Join(clashes, "; "))
}

func (u *implUseCase) execFindTime(ctx context.Context, sc model.Scope, perms model.Permissions, res intent.Result) string {
	if !perms.Calendar {
		return MsgConnectCalendar
	}

	duration := u.paramDuration(res, 30*time.Minute)
	out, err := u.schedule.FindOptimalTime(ctx, sc, duration, nil, scheduling.Preferences{})
	if err != nil {
		u.l.Errorf(ctx, "%s: find time: %v", LogPrefixExecute, err)
		return fmt.Sprintf("❌ I couldn't search your calendar: %v", err)
	}
	if out.Best == nil {
		return "❌ I couldn't find an open slot in the next two weeks."
	}

	reply := fmt.Sprintf("✅ Best time: %s.", u.resolver.FormatForUser(*out.Best, u.now()))
	if len(out.Alternatives) > 0 {
		reply += " Other options: " + u.joinTimes(out.Alternatives) + "."
	}
	return reply
}

func (u *implUseCase) execSendSMS(ctx context.Context, perms model.Permissions, res intent.Result) string {
	if !perms.SMS || u.sms == nil {
		return MsgConnectSMS
	}

	to := res.Param("to", "recipient", "phone", "number")
	if to == "" {
		return MsgMissingSMSRecipient
	}
	body := res.Param("message", "body", "text")
	if body == "" {
		return MsgMissingSMSBody
	}

	if _, err := u.sms.SendSMS(ctx, to, body); err != nil {
		u.l.Errorf(ctx, "%s: send sms to %s: %v", LogPrefixExecute, to, err)
		return fmt.Sprintf("❌ I couldn't send the text: %v", err)
	}
	return fmt.Sprintf("✅ Text sent to %s.", to)
}

func (u *implUseCase) execMakeCall(ctx context.Context, perms model.Permissions, res intent.Result) string {
	if !perms.Calls || u.sms == nil {
		return MsgConnectCalls
	}

	to := res.Param("to", "recipient", "phone", "number")
	if to == "" {
		return MsgMissingCallRecipient
	}
	message := res.Param("message", "say")
	if message == "" {
		message = "Hello! This is your personal assistant calling on behalf of your account."
	}

	if _, err := u.sms.MakeCall(ctx, to, message); err != nil {
		u.l.Errorf(ctx, "%s: call %s: %v", LogPrefixExecute, to, err)
		return fmt.Sprintf("❌ I couldn't place the call: %v", err)
	}
	return fmt.Sprintf("✅ Calling %s now.", to)
}
