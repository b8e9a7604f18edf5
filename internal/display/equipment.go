package display

import (
	"fmt"
	"strings"
)

// EquipmentType is a category of physical gear required for an exercise.
type EquipmentType string

const (
	EquipmentBodyweight      EquipmentType = "bodyweight"
	EquipmentDumbbells       EquipmentType = "dumbbells"
	EquipmentBarbell         EquipmentType = "barbell"
	EquipmentKettlebell      EquipmentType = "kettlebell"
	EquipmentResistanceBands EquipmentType = "resistance_bands"
	EquipmentPullupBar       EquipmentType = "pullup_bar"
	EquipmentYogaMat         EquipmentType = "yoga_mat"
	EquipmentCardioMachine   EquipmentType = "cardio_machine"
)

// AllEquipmentTypes is the canonical variant list.
var AllEquipmentTypes = []EquipmentType{
	EquipmentBodyweight,
	EquipmentDumbbells,
	EquipmentBarbell,
	EquipmentKettlebell,
	EquipmentResistanceBands,
	EquipmentPullupBar,
	EquipmentYogaMat,
	EquipmentCardioMachine,
}

// ParseEquipmentType maps a wire value to an EquipmentType.
func ParseEquipmentType(s string) (EquipmentType, error) {
	e := EquipmentType(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case EquipmentBodyweight, EquipmentDumbbells, EquipmentBarbell,
		EquipmentKettlebell, EquipmentResistanceBands, EquipmentPullupBar,
		EquipmentYogaMat, EquipmentCardioMachine:
		return e, nil
	}
	return "", fmt.Errorf("%w: equipment %q", ErrUnmappedVariant, s)
}

// Icon returns the symbol identifier for this equipment category. The
// identifier is opaque here; clients resolve it against their icon set.
func (e EquipmentType) Icon() (string, error) {
	switch e {
	case EquipmentBodyweight:
		return "figure.strengthtraining.functional", nil
	case EquipmentDumbbells:
		return "dumbbell", nil
	case EquipmentBarbell:
		return "figure.strengthtraining.traditional", nil
	case EquipmentKettlebell:
		return "figure.cross.training", nil
	case EquipmentResistanceBands:
		return "figure.flexibility", nil
	case EquipmentPullupBar:
		return "figure.play", nil
	case EquipmentYogaMat:
		return "figure.yoga", nil
	case EquipmentCardioMachine:
		return "figure.run.treadmill", nil
	}
	return "", fmt.Errorf("%w: equipment %q", ErrUnmappedVariant, string(e))
}
