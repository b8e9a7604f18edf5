package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PaletteStore is the storage surface the handlers need. *storage.DB
// satisfies it; tests substitute a stub.
type PaletteStore interface {
	CreatePalette(ctx context.Context, name, description string) (*models.PaletteRecord, error)
	GetPalette(ctx context.Context, id uuid.UUID) (*models.PaletteRecord, error)
	GetPaletteByName(ctx context.Context, name string) (*models.PaletteRecord, error)
	ListPalettes(ctx context.Context) ([]models.PaletteRecord, error)
	SetOverride(ctx context.Context, id uuid.UUID, token, hex string) (*models.PaletteOverride, error)
	DeleteOverride(ctx context.Context, id uuid.UUID, token string) error
	DeletePalette(ctx context.Context, id uuid.UUID) error
}

// Compile-time check: *storage.DB satisfies PaletteStore.
var _ PaletteStore = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store          PaletteStore
	fmtr           *display.Formatter
	log            *slog.Logger
	apiKey         string
	defaultPalette string
	router         chi.Router
}

// New creates a new Server with all routes configured. defaultPalette names
// the stored palette served at /api/v1/tokens; empty serves fallback colors.
func New(store PaletteStore, fmtr *display.Formatter, apiKey, defaultPalette string, log *slog.Logger) *Server {
	s := &Server{
		store:          store,
		fmtr:           fmtr,
		log:            log,
		apiKey:         apiKey,
		defaultPalette: defaultPalette,
		router:         chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/healthz", s.handleHealthz)

	// Read surface — what the mobile clients fetch on launch.
	s.router.Get("/api/v1/tokens", s.handleTokens)
	s.router.Get("/api/v1/tokens/{token}", s.handleToken)
	s.router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/focus", s.handleFocusCatalog)
		r.Get("/difficulty", s.handleDifficultyCatalog)
		r.Get("/equipment", s.handleEquipmentCatalog)
		r.Get("/timeofday", s.handleTimeOfDayCatalog)
		r.Get("/mood", s.handleMoodCatalog)
	})
	s.router.Get("/api/v1/preview/duration", s.handlePreviewDuration)
	s.router.Get("/api/v1/preview/target", s.handlePreviewTarget)
	s.router.Get("/api/v1/preview/schedule", s.handlePreviewSchedule)

	// Palette management — design tooling only, API key required for writes.
	s.router.Route("/api/v1/palettes", func(r chi.Router) {
		r.Get("/", s.handleListPalettes)
		r.Get("/{id}", s.handleGetPalette)
		r.Get("/{id}/resolved", s.handleResolvedPalette)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/", s.handleCreatePalette)
			r.Delete("/{id}", s.handleDeletePalette)
			r.Put("/{id}/overrides/{token}", s.handleSetOverride)
			r.Delete("/{id}/overrides/{token}", s.handleDeleteOverride)
		})
	})
}
