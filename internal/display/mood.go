package display

import (
	"fmt"
	"strings"

	"github.com/claude/repstyle/internal/theme"
)

// MoodState is the user's self-reported energy level, used only for
// color-coded display.
type MoodState string

const (
	MoodEnergized MoodState = "energized"
	MoodMeh       MoodState = "meh"
	MoodTired     MoodState = "tired"
)

// AllMoodStates is the canonical variant list.
var AllMoodStates = []MoodState{MoodEnergized, MoodMeh, MoodTired}

// ParseMoodState maps a wire value to a MoodState.
func ParseMoodState(s string) (MoodState, error) {
	m := MoodState(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MoodEnergized, MoodMeh, MoodTired:
		return m, nil
	}
	return "", fmt.Errorf("%w: mood %q", ErrUnmappedVariant, s)
}

// Token returns the theme token carrying this mood's color.
func (m MoodState) Token() (theme.Token, error) {
	switch m {
	case MoodEnergized:
		return theme.TokenMoodEnergized, nil
	case MoodMeh:
		return theme.TokenMoodMeh, nil
	case MoodTired:
		return theme.TokenMoodTired, nil
	}
	return "", fmt.Errorf("%w: mood %q", ErrUnmappedVariant, string(m))
}

// Color resolves this mood's color through the given resolver chain.
func (m MoodState) Color(r theme.Resolver) (theme.Color, error) {
	tok, err := m.Token()
	if err != nil {
		return theme.Color{}, err
	}
	if c, ok := r.Resolve(tok); ok {
		return c, nil
	}
	c, _ := theme.Fallback.Resolve(tok)
	return c, nil
}
