package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/theme"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) tokenCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(theme.ResolveAll(theme.Fallback).Hex())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) displayCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	focus, err := display.FocusCatalog()
	if err != nil {
		return nil, err
	}
	difficulty, err := display.DifficultyCatalog()
	if err != nil {
		return nil, err
	}
	equipment, err := display.EquipmentCatalog()
	if err != nil {
		return nil, err
	}
	timeOfDay, err := display.TimeOfDayCatalog()
	if err != nil {
		return nil, err
	}
	mood, err := display.MoodCatalog()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(map[string]any{
		"focus":       focus,
		"difficulty":  difficulty,
		"equipment":   equipment,
		"time_of_day": timeOfDay,
		"mood":        mood,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
