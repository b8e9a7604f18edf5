package display

import (
	"fmt"
	"time"
)

// Layouts matching the app's short-time and medium-date conventions.
const (
	layoutShortTime      = "3:04 PM"
	layoutMediumDateTime = "Jan 2, 2006 at 3:04 PM"
)

// Formatter renders durations and scheduled dates for display. It carries an
// explicit location instead of reading the ambient system locale, so output
// is deterministic regardless of where the server runs.
type Formatter struct {
	loc *time.Location
}

// NewFormatter creates a Formatter rendering times in loc. A nil loc means UTC.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{loc: loc}
}

// Duration renders an estimated duration in seconds as "<N> min".
// Minutes truncate: 90s is "1 min", 59s is "0 min". Negative input clamps to 0.
func (f *Formatter) Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d min", seconds/60)
}

// ScheduledTime renders a scheduled timestamp as a short time, e.g. "3:45 PM".
func (f *Formatter) ScheduledTime(t time.Time) string {
	return t.In(f.loc).Format(layoutShortTime)
}

// ScheduledDateTime renders a scheduled timestamp as medium date plus short
// time, e.g. "Jan 2, 2026 at 3:45 PM".
func (f *Formatter) ScheduledDateTime(t time.Time) string {
	return t.In(f.loc).Format(layoutMediumDateTime)
}

// Target renders an exercise's prescription line. Sets/reps win over duration
// when both are present; an exercise with no target at all reads
// "As prescribed".
func (f *Formatter) Target(sets, reps, durationSec *int) string {
	if sets != nil && reps != nil {
		return fmt.Sprintf("%d sets × %d reps", *sets, *reps)
	}
	if durationSec != nil {
		secs := *durationSec
		if secs < 0 {
			secs = 0
		}
		if secs >= 60 {
			return fmt.Sprintf("%d:%02d", secs/60, secs%60)
		}
		return fmt.Sprintf("%ds", secs)
	}
	return "As prescribed"
}
