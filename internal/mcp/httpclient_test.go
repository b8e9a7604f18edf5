package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/storage"
	"github.com/google/uuid"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestListPalettes verifies the HTTP client parses the palette list response.
func TestListPalettes(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/palettes": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.PaletteRecord{
				{ID: id, Name: "midnight", CreatedAt: time.Now(), UpdatedAt: time.Now()},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	palettes, err := client.ListPalettes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(palettes) != 1 {
		t.Fatalf("got %d palettes, want 1", len(palettes))
	}
	if palettes[0].Name != "midnight" {
		t.Errorf("name = %q, want midnight", palettes[0].Name)
	}
}

// TestGetPaletteByName verifies the list-then-fetch path: the client finds
// the named palette in the list and fetches its overrides by ID.
func TestGetPaletteByName(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/palettes": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.PaletteRecord{
				{ID: id, Name: "midnight"},
				{ID: uuid.New(), Name: "dawn"},
			})
		},
		"/api/v1/palettes/" + id.String(): func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.PaletteRecord{
				ID: id, Name: "midnight",
				Overrides: []models.PaletteOverride{{Token: "accent", Hex: "#112233"}},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	rec, err := client.GetPaletteByName(context.Background(), "midnight")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != id {
		t.Errorf("id = %s, want %s", rec.ID, id)
	}
	if len(rec.Overrides) != 1 || rec.Overrides[0].Hex != "#112233" {
		t.Errorf("overrides = %v", rec.Overrides)
	}
}

// TestGetPaletteByNameMissing verifies an absent name maps to ErrNotFound so
// tool handlers can report "palette not found" instead of a raw HTTP error.
func TestGetPaletteByNameMissing(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/palettes": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.PaletteRecord{})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.GetPaletteByName(context.Background(), "ghost")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// TestHTTPClientServerError verifies non-200 responses surface as errors
// carrying the status and body.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/palettes": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	if _, err := client.ListPalettes(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
