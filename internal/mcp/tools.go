package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/storage"
	"github.com/claude/repstyle/internal/theme"
	"github.com/mark3labs/mcp-go/mcp"
)

// resolverFor builds the resolver chain for an optional palette name. Empty
// means fallback colors only.
func (h *handlers) resolverFor(ctx context.Context, palette string) (theme.Resolver, error) {
	if palette == "" {
		return theme.Fallback, nil
	}
	rec, err := h.ds.GetPaletteByName(ctx, palette)
	if err != nil {
		return nil, err
	}
	return theme.Overlay(storage.ResolverFor(rec), theme.Fallback), nil
}

// --- Tool definitions ---

var toolResolveToken = mcp.NewTool("resolve_token",
	mcp.WithDescription("Resolve a semantic color token to its hex value. Optionally against a named palette; overrides win, everything else keeps the built-in fallback color."),
	mcp.WithString("token", mcp.Required(), mcp.Description("Token name (e.g. background, accent, focus_push, difficulty_advanced, mood_tired)")),
	mcp.WithString("palette", mcp.Description("Palette name to resolve against. Omit for built-in fallback colors.")),
)

var toolListTokens = mcp.NewTool("list_tokens",
	mcp.WithDescription("List every semantic color token with its resolved hex value. Optionally against a named palette."),
	mcp.WithString("palette", mcp.Description("Palette name to resolve against. Omit for built-in fallback colors.")),
)

var toolGetDisplayCatalog = mcp.NewTool("get_display_catalog",
	mcp.WithDescription("Get the display metadata catalog for one domain enum: variants with their descriptions, display names, icons, time ranges, and color tokens."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Which catalog to fetch"), mcp.Enum("focus", "difficulty", "equipment", "timeofday", "mood")),
)

var toolListPalettes = mcp.NewTool("list_palettes",
	mcp.WithDescription("List stored custom palettes with names and timestamps."),
)

var toolGetPalette = mcp.NewTool("get_palette",
	mcp.WithDescription("Get a stored palette including its token overrides."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Palette name")),
)

var toolPreviewDuration = mcp.NewTool("preview_duration",
	mcp.WithDescription("Render a workout's estimated duration the way the app displays it (\"<N> min\", minutes truncate)."),
	mcp.WithNumber("seconds", mcp.Required(), mcp.Description("Estimated duration in seconds")),
)

var toolPreviewTarget = mcp.NewTool("preview_target",
	mcp.WithDescription("Render an exercise prescription line the way the app displays it. Sets/reps win over duration; no target reads \"As prescribed\"."),
	mcp.WithNumber("sets", mcp.Description("Target sets")),
	mcp.WithNumber("reps", mcp.Description("Target reps")),
	mcp.WithNumber("duration", mcp.Description("Target duration in seconds")),
)

// --- Tool handlers ---

func (h *handlers) resolveToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError("token parameter is required"), nil
	}
	tok, err := theme.ParseToken(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := h.resolverFor(ctx, req.GetString("palette", ""))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("palette not found"), nil
		}
		h.log.Error("mcp resolve_token", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	c, ok := r.Resolve(tok)
	if !ok {
		c, _ = theme.Fallback.Resolve(tok)
	}
	result, err := mcp.NewToolResultJSON(map[string]string{"token": string(tok), "hex": c.Hex()})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := h.resolverFor(ctx, req.GetString("palette", ""))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("palette not found"), nil
		}
		h.log.Error("mcp list_tokens", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(theme.ResolveAll(r).Hex())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDisplayCatalog(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}

	var entries any
	switch strings.ToLower(kind) {
	case "focus":
		entries, err = display.FocusCatalog()
	case "difficulty":
		entries, err = display.DifficultyCatalog()
	case "equipment":
		entries, err = display.EquipmentCatalog()
	case "timeofday":
		entries, err = display.TimeOfDayCatalog()
	case "mood":
		entries, err = display.MoodCatalog()
	default:
		return mcp.NewToolResultError("unknown catalog kind: " + kind), nil
	}
	if err != nil {
		h.log.Error("mcp get_display_catalog", "kind", kind, "error", err)
		return mcp.NewToolResultError("catalog build failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPalettes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	palettes, err := h.ds.ListPalettes(ctx)
	if err != nil {
		h.log.Error("mcp list_palettes", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(palettes)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	rec, err := h.ds.GetPaletteByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("palette not found"), nil
		}
		h.log.Error("mcp get_palette", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) previewDuration(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seconds, err := req.RequireFloat("seconds")
	if err != nil {
		return mcp.NewToolResultError("seconds parameter is required"), nil
	}
	result, err := mcp.NewToolResultJSON(map[string]string{
		"formatted": h.fmtr.Duration(int(seconds)),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) previewTarget(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sets, reps, duration *int
	if v := req.GetFloat("sets", -1); v >= 0 {
		n := int(v)
		sets = &n
	}
	if v := req.GetFloat("reps", -1); v >= 0 {
		n := int(v)
		reps = &n
	}
	if v := req.GetFloat("duration", -1); v >= 0 {
		n := int(v)
		duration = &n
	}
	result, err := mcp.NewToolResultJSON(map[string]string{
		"formatted": h.fmtr.Target(sets, reps, duration),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
