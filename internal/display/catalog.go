package display

// Catalog entry types returned by the REST and MCP catalog surfaces. Colors
// are referenced by token so clients resolve them against whichever palette
// they fetched.

// FocusEntry describes one focus area.
type FocusEntry struct {
	Value       string `json:"value"`
	Description string `json:"description"`
	Token       string `json:"token"`
}

// DifficultyEntry describes one difficulty tier.
type DifficultyEntry struct {
	Value       string `json:"value"`
	DisplayName string `json:"display_name"`
	Rank        int    `json:"rank"`
	Token       string `json:"token"`
}

// EquipmentEntry describes one equipment category.
type EquipmentEntry struct {
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// TimeOfDayEntry describes one daypart.
type TimeOfDayEntry struct {
	Value string `json:"value"`
	Range string `json:"range"`
}

// MoodEntry describes one mood state.
type MoodEntry struct {
	Value string `json:"value"`
	Token string `json:"token"`
}

// FocusCatalog lists every focus area with its display metadata.
func FocusCatalog() ([]FocusEntry, error) {
	out := make([]FocusEntry, 0, len(AllFocusTypes))
	for _, f := range AllFocusTypes {
		desc, err := f.Description()
		if err != nil {
			return nil, err
		}
		tok, err := f.Token()
		if err != nil {
			return nil, err
		}
		out = append(out, FocusEntry{Value: string(f), Description: desc, Token: string(tok)})
	}
	return out, nil
}

// DifficultyCatalog lists every difficulty tier in ascending order.
func DifficultyCatalog() ([]DifficultyEntry, error) {
	out := make([]DifficultyEntry, 0, len(AllDifficultyLevels))
	for _, d := range AllDifficultyLevels {
		name, err := d.DisplayName()
		if err != nil {
			return nil, err
		}
		rank, err := d.Rank()
		if err != nil {
			return nil, err
		}
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		out = append(out, DifficultyEntry{Value: string(d), DisplayName: name, Rank: rank, Token: string(tok)})
	}
	return out, nil
}

// EquipmentCatalog lists every equipment category with its icon identifier.
func EquipmentCatalog() ([]EquipmentEntry, error) {
	out := make([]EquipmentEntry, 0, len(AllEquipmentTypes))
	for _, e := range AllEquipmentTypes {
		icon, err := e.Icon()
		if err != nil {
			return nil, err
		}
		out = append(out, EquipmentEntry{Value: string(e), Icon: icon})
	}
	return out, nil
}

// TimeOfDayCatalog lists every daypart with its time-range text.
func TimeOfDayCatalog() ([]TimeOfDayEntry, error) {
	out := make([]TimeOfDayEntry, 0, len(AllTimesOfDay))
	for _, t := range AllTimesOfDay {
		r, err := t.Range()
		if err != nil {
			return nil, err
		}
		out = append(out, TimeOfDayEntry{Value: string(t), Range: r})
	}
	return out, nil
}

// MoodCatalog lists every mood state with its color token.
func MoodCatalog() ([]MoodEntry, error) {
	out := make([]MoodEntry, 0, len(AllMoodStates))
	for _, m := range AllMoodStates {
		tok, err := m.Token()
		if err != nil {
			return nil, err
		}
		out = append(out, MoodEntry{Value: string(m), Token: string(tok)})
	}
	return out, nil
}
