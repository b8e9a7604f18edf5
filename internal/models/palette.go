package models

import (
	"time"

	"github.com/google/uuid"
)

// PaletteRecord is a stored custom palette as held in the palettes table.
// Overrides are the palette's token colors; tokens without an override fall
// back to the built-in theme colors at resolution time.
type PaletteRecord struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Overrides   []PaletteOverride `json:"overrides,omitempty"`
}

// PaletteOverride is one token→hex row from the palette_overrides table.
// Token and Hex are validated before insertion; rows read back are trusted.
type PaletteOverride struct {
	PaletteID uuid.UUID `json:"-"`
	Token     string    `json:"token"`
	Hex       string    `json:"hex"`
}
