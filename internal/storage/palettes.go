package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/theme"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreatePalette inserts a new palette. Names are unique; a duplicate name is
// surfaced as the underlying constraint error.
func (db *DB) CreatePalette(ctx context.Context, name, description string) (*models.PaletteRecord, error) {
	rec := &models.PaletteRecord{ID: uuid.New(), Name: name, Description: description}
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO palettes (id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.Name, rec.Description,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting palette: %w", err)
	}
	return rec, nil
}

// GetPalette fetches a palette and its overrides by ID.
func (db *DB) GetPalette(ctx context.Context, id uuid.UUID) (*models.PaletteRecord, error) {
	return db.getPalette(ctx, `WHERE id = $1`, id)
}

// GetPaletteByName fetches a palette and its overrides by unique name.
func (db *DB) GetPaletteByName(ctx context.Context, name string) (*models.PaletteRecord, error) {
	return db.getPalette(ctx, `WHERE name = $1`, name)
}

func (db *DB) getPalette(ctx context.Context, where string, arg any) (*models.PaletteRecord, error) {
	rec := &models.PaletteRecord{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM palettes `+where,
		arg,
	).Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying palette: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT palette_id, token, hex FROM palette_overrides WHERE palette_id = $1 ORDER BY token`,
		rec.ID)
	if err != nil {
		return nil, fmt.Errorf("querying palette overrides: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.PaletteOverride
		if err := rows.Scan(&o.PaletteID, &o.Token, &o.Hex); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}
		rec.Overrides = append(rec.Overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}
	return rec, nil
}

// ListPalettes returns all palettes without their overrides, newest first.
func (db *DB) ListPalettes(ctx context.Context) ([]models.PaletteRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM palettes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing palettes: %w", err)
	}
	defer rows.Close()

	var out []models.PaletteRecord
	for rows.Next() {
		var rec models.PaletteRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning palette: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading palettes: %w", err)
	}
	return out, nil
}

// SetOverride upserts one token color for a palette. Both the token name and
// the hex value are validated here so bad rows never reach the table.
func (db *DB) SetOverride(ctx context.Context, id uuid.UUID, token, hex string) (*models.PaletteOverride, error) {
	tok, err := theme.ParseToken(token)
	if err != nil {
		return nil, err
	}
	c, err := theme.ParseHex(hex)
	if err != nil {
		return nil, err
	}

	var exists bool
	if err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM palettes WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking palette: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO palette_overrides (palette_id, token, hex)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (palette_id, token) DO UPDATE SET hex = EXCLUDED.hex`,
		id, string(tok), c.Hex())
	if err != nil {
		return nil, fmt.Errorf("upserting override: %w", err)
	}

	db.touchPalette(ctx, id)
	return &models.PaletteOverride{PaletteID: id, Token: string(tok), Hex: c.Hex()}, nil
}

// DeleteOverride removes one token override from a palette.
func (db *DB) DeleteOverride(ctx context.Context, id uuid.UUID, token string) error {
	tok, err := theme.ParseToken(token)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM palette_overrides WHERE palette_id = $1 AND token = $2`,
		id, string(tok))
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	db.touchPalette(ctx, id)
	return nil
}

// DeletePalette removes a palette and its overrides (cascade).
func (db *DB) DeletePalette(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM palettes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting palette: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// touchPalette bumps updated_at so clients can cheaply detect staleness.
// Best-effort: an override write that succeeded is not failed for this.
func (db *DB) touchPalette(ctx context.Context, id uuid.UUID) {
	_, _ = db.Pool.Exec(ctx, `UPDATE palettes SET updated_at = now() WHERE id = $1`, id)
}

// ResolverFor builds a theme.Resolver from a palette's stored overrides.
// Rows that fail to parse are skipped; they cannot be inserted through
// SetOverride, so a bad row means the table was edited by hand.
func ResolverFor(rec *models.PaletteRecord) theme.Resolver {
	s := make(theme.Static, len(rec.Overrides))
	for _, o := range rec.Overrides {
		tok, err := theme.ParseToken(o.Token)
		if err != nil {
			continue
		}
		c, err := theme.ParseHex(o.Hex)
		if err != nil {
			continue
		}
		s[tok] = c
	}
	return s
}
