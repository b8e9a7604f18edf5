package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Token is a semantic color token name. Clients ask for tokens, never for raw
// colors, so the palette can change without touching view code.
type Token string

// Core surface and text tokens.
const (
	TokenBackground       Token = "background"
	TokenAccent           Token = "accent"
	TokenTextPrimary      Token = "text_primary"
	TokenTextSecondary    Token = "text_secondary"
	TokenSuccess          Token = "success"
	TokenWarning          Token = "warning"
	TokenError            Token = "error"
	TokenInfo             Token = "info"
	TokenSurface          Token = "surface"
	TokenSurfaceSecondary Token = "surface_secondary"
	TokenBorder           Token = "border"
	TokenDivider          Token = "divider"
)

// Per-focus tokens, one per workout focus area.
const (
	TokenFocusPush     Token = "focus_push"
	TokenFocusPull     Token = "focus_pull"
	TokenFocusLegs     Token = "focus_legs"
	TokenFocusCardio   Token = "focus_cardio"
	TokenFocusMobility Token = "focus_mobility"
)

// Per-difficulty tokens.
const (
	TokenDifficultyBeginner     Token = "difficulty_beginner"
	TokenDifficultyIntermediate Token = "difficulty_intermediate"
	TokenDifficultyAdvanced     Token = "difficulty_advanced"
)

// Per-mood tokens.
const (
	TokenMoodEnergized Token = "mood_energized"
	TokenMoodMeh       Token = "mood_meh"
	TokenMoodTired     Token = "mood_tired"
)

// AllTokens is the canonical token list. Catalog endpoints iterate it and the
// fallback-exhaustiveness test checks every entry resolves.
var AllTokens = []Token{
	TokenBackground,
	TokenAccent,
	TokenTextPrimary,
	TokenTextSecondary,
	TokenSuccess,
	TokenWarning,
	TokenError,
	TokenInfo,
	TokenSurface,
	TokenSurfaceSecondary,
	TokenBorder,
	TokenDivider,
	TokenFocusPush,
	TokenFocusPull,
	TokenFocusLegs,
	TokenFocusCardio,
	TokenFocusMobility,
	TokenDifficultyBeginner,
	TokenDifficultyIntermediate,
	TokenDifficultyAdvanced,
	TokenMoodEnergized,
	TokenMoodMeh,
	TokenMoodTired,
}

// ErrUnknownToken is returned when a token name is not in the canonical set.
var ErrUnknownToken = errors.New("unknown theme token")

var tokenSet = func() map[Token]struct{} {
	m := make(map[Token]struct{}, len(AllTokens))
	for _, t := range AllTokens {
		m[t] = struct{}{}
	}
	return m
}()

// ParseToken validates a token name. Input is trimmed and lowercased before
// lookup since token names arrive from URLs and stored rows.
func ParseToken(s string) (Token, error) {
	t := Token(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tokenSet[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, s)
	}
	return t, nil
}

// Valid reports whether the token is in the canonical set.
func (t Token) Valid() bool {
	_, ok := tokenSet[t]
	return ok
}
