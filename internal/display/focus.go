package display

import (
	"fmt"
	"strings"

	"github.com/claude/repstyle/internal/theme"
)

// FocusType categorizes a workout's primary muscle-group emphasis.
type FocusType string

const (
	FocusPush     FocusType = "push"
	FocusPull     FocusType = "pull"
	FocusLegs     FocusType = "legs"
	FocusCardio   FocusType = "cardio"
	FocusMobility FocusType = "mobility"
)

// AllFocusTypes is the canonical variant list.
var AllFocusTypes = []FocusType{FocusPush, FocusPull, FocusLegs, FocusCardio, FocusMobility}

var errUnknownFocus = fmt.Errorf("%w: focus type", ErrUnmappedVariant)

// ParseFocusType maps a wire value to a FocusType. Input is trimmed and
// lowercased since values arrive from URLs and client payloads.
func ParseFocusType(s string) (FocusType, error) {
	f := FocusType(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FocusPush, FocusPull, FocusLegs, FocusCardio, FocusMobility:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFocus, s)
}

// Token returns the theme token carrying this focus area's color.
func (f FocusType) Token() (theme.Token, error) {
	switch f {
	case FocusPush:
		return theme.TokenFocusPush, nil
	case FocusPull:
		return theme.TokenFocusPull, nil
	case FocusLegs:
		return theme.TokenFocusLegs, nil
	case FocusCardio:
		return theme.TokenFocusCardio, nil
	case FocusMobility:
		return theme.TokenFocusMobility, nil
	}
	return "", fmt.Errorf("%w: focus type %q", ErrUnmappedVariant, string(f))
}

// Description returns the muscle-group description shown under the focus name.
func (f FocusType) Description() (string, error) {
	switch f {
	case FocusPush:
		return "Chest, shoulders & triceps", nil
	case FocusPull:
		return "Back & biceps", nil
	case FocusLegs:
		return "Quads, hamstrings & glutes", nil
	case FocusCardio:
		return "Heart & lungs", nil
	case FocusMobility:
		return "Joints & flexibility", nil
	}
	return "", fmt.Errorf("%w: focus type %q", ErrUnmappedVariant, string(f))
}

// Color resolves this focus area's color through the given resolver chain.
func (f FocusType) Color(r theme.Resolver) (theme.Color, error) {
	tok, err := f.Token()
	if err != nil {
		return theme.Color{}, err
	}
	if c, ok := r.Resolve(tok); ok {
		return c, nil
	}
	c, _ := theme.Fallback.Resolve(tok)
	return c, nil
}
