package mcp

import (
	"log/slog"

	"github.com/claude/repstyle/internal/display"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, fmtr *display.Formatter, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RepStyle", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RepStyle theming server. Resolve semantic color tokens, inspect display catalogs for the fitness app's domain enums, manage custom palettes, and preview duration/target formatting exactly as the app renders it."),
	)

	h := &handlers{ds: ds, fmtr: fmtr, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolResolveToken, Handler: h.resolveToken},
		server.ServerTool{Tool: toolListTokens, Handler: h.listTokens},
		server.ServerTool{Tool: toolGetDisplayCatalog, Handler: h.getDisplayCatalog},
		server.ServerTool{Tool: toolListPalettes, Handler: h.listPalettes},
		server.ServerTool{Tool: toolGetPalette, Handler: h.getPalette},
		server.ServerTool{Tool: toolPreviewDuration, Handler: h.previewDuration},
		server.ServerTool{Tool: toolPreviewTarget, Handler: h.previewTarget},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resTokenCatalog, Handler: h.tokenCatalog},
		server.ServerResource{Resource: resDisplayCatalog, Handler: h.displayCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds   DataSource
	fmtr *display.Formatter
	log  *slog.Logger
}

// --- Resource definitions ---

var resTokenCatalog = mcp.NewResource(
	"repstyle://token_catalog",
	"Token Catalog",
	mcp.WithResourceDescription("Every semantic color token with its built-in fallback hex value"),
	mcp.WithMIMEType("application/json"),
)

var resDisplayCatalog = mcp.NewResource(
	"repstyle://display_catalog",
	"Display Catalog",
	mcp.WithResourceDescription("Display metadata for all domain enums: focus areas, difficulty tiers, equipment, dayparts, and moods"),
	mcp.WithMIMEType("application/json"),
)
