package timeparse

import (
	"fmt"
	"time"
)

// FormatForUser renders an instant as a user-facing string relative to
// referenceNow: near times read as relative ("in 20 minutes"), far times as a
// full localized date with the timezone label appended.
func (r *Resolver) FormatForUser(t time.Time, referenceNow time.Time) string {
	diff := t.Sub(referenceNow)

	switch {
	case diff < time.Minute:
		return "in less than a minute"
	case diff < time.Hour:
		return fmt.Sprintf("in %s", plural(int(diff.Minutes()), "minute"))
	case diff < 24*time.Hour:
		return fmt.Sprintf("in %s", plural(int(diff.Hours()), "hour"))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("in %s", plural(int(diff.Hours()/24), "day"))
	}

	local := t.In(r.location)
	return fmt.Sprintf("%s %s", local.Format("Monday, January 2, 2006 at 3:04 PM"), local.Format("MST"))
}

// plural renders "1 minute" / "5 minutes".
func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
