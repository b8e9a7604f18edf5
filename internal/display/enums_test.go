package display

import (
	"errors"
	"testing"

	"github.com/claude/repstyle/internal/theme"
)

// TestFocusMappersExhaustive verifies every focus variant has a token, a
// description, and a resolvable color. A new variant that misses a mapper
// fails here instead of rendering blank in the app.
func TestFocusMappersExhaustive(t *testing.T) {
	for _, f := range AllFocusTypes {
		tok, err := f.Token()
		if err != nil {
			t.Errorf("%s.Token(): %v", f, err)
		}
		if !tok.Valid() {
			t.Errorf("%s.Token() = %q, not a canonical token", f, tok)
		}
		if _, err := f.Description(); err != nil {
			t.Errorf("%s.Description(): %v", f, err)
		}
		if _, err := f.Color(theme.Fallback); err != nil {
			t.Errorf("%s.Color(): %v", f, err)
		}
	}
}

// TestDifficultyMappersExhaustive verifies every difficulty variant maps, and
// that ranks are strictly ascending in AllDifficultyLevels order.
func TestDifficultyMappersExhaustive(t *testing.T) {
	prev := -1
	for _, d := range AllDifficultyLevels {
		if _, err := d.DisplayName(); err != nil {
			t.Errorf("%s.DisplayName(): %v", d, err)
		}
		tok, err := d.Token()
		if err != nil {
			t.Errorf("%s.Token(): %v", d, err)
		} else if !tok.Valid() {
			t.Errorf("%s.Token() = %q, not a canonical token", d, tok)
		}
		rank, err := d.Rank()
		if err != nil {
			t.Errorf("%s.Rank(): %v", d, err)
			continue
		}
		if rank <= prev {
			t.Errorf("%s.Rank() = %d, not ascending after %d", d, rank, prev)
		}
		prev = rank
	}
}

// TestEquipmentIconsExhaustive verifies every equipment variant has an icon
// identifier and no two variants collide on the same symbol.
func TestEquipmentIconsExhaustive(t *testing.T) {
	seen := make(map[string]EquipmentType)
	for _, e := range AllEquipmentTypes {
		icon, err := e.Icon()
		if err != nil {
			t.Errorf("%s.Icon(): %v", e, err)
			continue
		}
		if icon == "" {
			t.Errorf("%s.Icon() is empty", e)
		}
		if other, dup := seen[icon]; dup {
			t.Errorf("icon %q shared by %s and %s", icon, e, other)
		}
		seen[icon] = e
	}
}

// TestTimeOfDayRangesExhaustive verifies every daypart has range text.
func TestTimeOfDayRangesExhaustive(t *testing.T) {
	for _, tod := range AllTimesOfDay {
		r, err := tod.Range()
		if err != nil {
			t.Errorf("%s.Range(): %v", tod, err)
		}
		if r == "" {
			t.Errorf("%s.Range() is empty", tod)
		}
	}
}

// TestMoodMappersExhaustive verifies every mood maps to a canonical token.
func TestMoodMappersExhaustive(t *testing.T) {
	for _, m := range AllMoodStates {
		tok, err := m.Token()
		if err != nil {
			t.Errorf("%s.Token(): %v", m, err)
		} else if !tok.Valid() {
			t.Errorf("%s.Token() = %q, not a canonical token", m, tok)
		}
	}
}

// TestUnmappedVariant verifies a cast from an unvalidated string surfaces
// ErrUnmappedVariant rather than a silent default.
func TestUnmappedVariant(t *testing.T) {
	if _, err := FocusType("swimming").Token(); !errors.Is(err, ErrUnmappedVariant) {
		t.Errorf("expected ErrUnmappedVariant, got %v", err)
	}
	if _, err := DifficultyLevel("expert").DisplayName(); !errors.Is(err, ErrUnmappedVariant) {
		t.Errorf("expected ErrUnmappedVariant, got %v", err)
	}
	if _, err := EquipmentType("treadmill").Icon(); !errors.Is(err, ErrUnmappedVariant) {
		t.Errorf("expected ErrUnmappedVariant, got %v", err)
	}
	if _, err := MoodState("sleepy").Token(); !errors.Is(err, ErrUnmappedVariant) {
		t.Errorf("expected ErrUnmappedVariant, got %v", err)
	}
}

// TestParseEnums verifies parsing is trimmed and case-insensitive, and the
// round trip through the wire value is the identity for every variant.
func TestParseEnums(t *testing.T) {
	if f, err := ParseFocusType("  Push "); err != nil || f != FocusPush {
		t.Errorf("ParseFocusType = %v, %v", f, err)
	}
	if d, err := ParseDifficultyLevel("INTERMEDIATE"); err != nil || d != DifficultyIntermediate {
		t.Errorf("ParseDifficultyLevel = %v, %v", d, err)
	}
	if e, err := ParseEquipmentType("resistance_bands"); err != nil || e != EquipmentResistanceBands {
		t.Errorf("ParseEquipmentType = %v, %v", e, err)
	}
	if tod, err := ParseTimeOfDay("Evening"); err != nil || tod != TimeEvening {
		t.Errorf("ParseTimeOfDay = %v, %v", tod, err)
	}
	if m, err := ParseMoodState("meh"); err != nil || m != MoodMeh {
		t.Errorf("ParseMoodState = %v, %v", m, err)
	}

	if _, err := ParseFocusType("arms"); !errors.Is(err, ErrUnmappedVariant) {
		t.Errorf("ParseFocusType(arms): expected ErrUnmappedVariant, got %v", err)
	}
}

// TestCatalogsComplete verifies each catalog carries one entry per variant.
func TestCatalogsComplete(t *testing.T) {
	focus, err := FocusCatalog()
	if err != nil || len(focus) != len(AllFocusTypes) {
		t.Errorf("FocusCatalog: %d entries, err=%v", len(focus), err)
	}
	diff, err := DifficultyCatalog()
	if err != nil || len(diff) != len(AllDifficultyLevels) {
		t.Errorf("DifficultyCatalog: %d entries, err=%v", len(diff), err)
	}
	equip, err := EquipmentCatalog()
	if err != nil || len(equip) != len(AllEquipmentTypes) {
		t.Errorf("EquipmentCatalog: %d entries, err=%v", len(equip), err)
	}
	tod, err := TimeOfDayCatalog()
	if err != nil || len(tod) != len(AllTimesOfDay) {
		t.Errorf("TimeOfDayCatalog: %d entries, err=%v", len(tod), err)
	}
	mood, err := MoodCatalog()
	if err != nil || len(mood) != len(AllMoodStates) {
		t.Errorf("MoodCatalog: %d entries, err=%v", len(mood), err)
	}
}
