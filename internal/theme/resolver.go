package theme

// Resolver maps a semantic token to a concrete color. The boolean reports
// whether this tier knows the token; callers chain tiers with Overlay.
type Resolver interface {
	Resolve(Token) (Color, bool)
}

// Static is a fixed token→color table.
type Static map[Token]Color

// Resolve implements Resolver.
func (s Static) Resolve(t Token) (Color, bool) {
	c, ok := s[t]
	return c, ok
}

// Fallback holds the built-in colors used when no palette override exists.
// The background, accent and text values are the documented app defaults and
// must not drift; the rest are the shipped semantic defaults.
var Fallback = Static{
	TokenBackground:       {R: 0xF7, G: 0xF6, B: 0xF2},
	TokenAccent:           {R: 0x5A, G: 0xA4, B: 0x69},
	TokenTextPrimary:      {R: 0x33, G: 0x33, B: 0x33},
	TokenTextSecondary:    {R: 0x66, G: 0x66, B: 0x66},
	TokenSuccess:          {R: 0x4C, G: 0x9A, B: 0x52},
	TokenWarning:          {R: 0xE0, G: 0xA4, B: 0x38},
	TokenError:            {R: 0xC9, G: 0x4F, B: 0x4F},
	TokenInfo:             {R: 0x4F, G: 0x7F, B: 0xC9},
	TokenSurface:          {R: 0xFF, G: 0xFF, B: 0xFF},
	TokenSurfaceSecondary: {R: 0xEF, G: 0xEE, B: 0xE9},
	TokenBorder:           {R: 0xE0, G: 0xDF, B: 0xDA},
	TokenDivider:          {R: 0xEC, G: 0xEB, B: 0xE6},

	TokenFocusPush:     {R: 0xC9, G: 0x4F, B: 0x4F},
	TokenFocusPull:     {R: 0x4F, G: 0x7F, B: 0xC9},
	TokenFocusLegs:     {R: 0x8A, G: 0x5F, B: 0xBF},
	TokenFocusCardio:   {R: 0xE0, G: 0x78, B: 0x3C},
	TokenFocusMobility: {R: 0x3C, G: 0xA8, B: 0xA0},

	TokenDifficultyBeginner:     {R: 0x5A, G: 0xA4, B: 0x69},
	TokenDifficultyIntermediate: {R: 0xE0, G: 0xA4, B: 0x38},
	TokenDifficultyAdvanced:     {R: 0xC9, G: 0x4F, B: 0x4F},

	TokenMoodEnergized: {R: 0x5A, G: 0xA4, B: 0x69},
	TokenMoodMeh:       {R: 0xE0, G: 0xA4, B: 0x38},
	TokenMoodTired:     {R: 0x7B, G: 0x8A, B: 0x99},
}

type overlay struct {
	primary  Resolver
	fallback Resolver
}

// Overlay chains two resolvers: primary first, fallback when primary misses.
// Overlaying any resolver on Fallback yields total resolution over AllTokens.
func Overlay(primary, fallback Resolver) Resolver {
	return overlay{primary: primary, fallback: fallback}
}

// Resolve implements Resolver.
func (o overlay) Resolve(t Token) (Color, bool) {
	if c, ok := o.primary.Resolve(t); ok {
		return c, ok
	}
	return o.fallback.Resolve(t)
}
