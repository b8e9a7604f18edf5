package display

import (
	"fmt"
	"strings"
)

// TimeOfDay is the coarse daypart a workout is suggested for.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// AllTimesOfDay is the canonical variant list.
var AllTimesOfDay = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening}

// ParseTimeOfDay maps a wire value to a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return t, nil
	}
	return "", fmt.Errorf("%w: time of day %q", ErrUnmappedVariant, s)
}

// Range returns the fixed time-range text shown next to the daypart name.
func (t TimeOfDay) Range() (string, error) {
	switch t {
	case TimeMorning:
		return "6:00 AM – 12:00 PM", nil
	case TimeAfternoon:
		return "12:00 PM – 5:00 PM", nil
	case TimeEvening:
		return "5:00 PM – 9:00 PM", nil
	}
	return "", fmt.Errorf("%w: time of day %q", ErrUnmappedVariant, string(t))
}
