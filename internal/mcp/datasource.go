package mcp

import (
	"context"

	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/storage"
)

// DataSource abstracts the palette store for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListPalettes(ctx context.Context) ([]models.PaletteRecord, error)
	GetPaletteByName(ctx context.Context, name string) (*models.PaletteRecord, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
