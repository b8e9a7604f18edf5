package display

import (
	"fmt"
	"strings"

	"github.com/claude/repstyle/internal/theme"
)

// DifficultyLevel is the ordinal skill tier of a workout.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// AllDifficultyLevels is the canonical variant list, in ascending order.
var AllDifficultyLevels = []DifficultyLevel{
	DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced,
}

// ParseDifficultyLevel maps a wire value to a DifficultyLevel.
func ParseDifficultyLevel(s string) (DifficultyLevel, error) {
	d := DifficultyLevel(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	}
	return "", fmt.Errorf("%w: difficulty %q", ErrUnmappedVariant, s)
}

// Rank returns the ordinal position: beginner < intermediate < advanced.
func (d DifficultyLevel) Rank() (int, error) {
	switch d {
	case DifficultyBeginner:
		return 0, nil
	case DifficultyIntermediate:
		return 1, nil
	case DifficultyAdvanced:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: difficulty %q", ErrUnmappedVariant, string(d))
}

// DisplayName returns the capitalized name shown on workout cards.
func (d DifficultyLevel) DisplayName() (string, error) {
	switch d {
	case DifficultyBeginner:
		return "Beginner", nil
	case DifficultyIntermediate:
		return "Intermediate", nil
	case DifficultyAdvanced:
		return "Advanced", nil
	}
	return "", fmt.Errorf("%w: difficulty %q", ErrUnmappedVariant, string(d))
}

// Token returns the theme token carrying this difficulty's color.
func (d DifficultyLevel) Token() (theme.Token, error) {
	switch d {
	case DifficultyBeginner:
		return theme.TokenDifficultyBeginner, nil
	case DifficultyIntermediate:
		return theme.TokenDifficultyIntermediate, nil
	case DifficultyAdvanced:
		return theme.TokenDifficultyAdvanced, nil
	}
	return "", fmt.Errorf("%w: difficulty %q", ErrUnmappedVariant, string(d))
}

// Color resolves this difficulty's color through the given resolver chain.
func (d DifficultyLevel) Color(r theme.Resolver) (theme.Color, error) {
	tok, err := d.Token()
	if err != nil {
		return theme.Color{}, err
	}
	if c, ok := r.Resolve(tok); ok {
		return c, nil
	}
	c, _ := theme.Fallback.Resolve(tok)
	return c, nil
}
