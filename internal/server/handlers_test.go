package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/storage"
	"github.com/claude/repstyle/internal/theme"
	"github.com/google/uuid"
)

// stubStore is an in-memory PaletteStore with the same validation rules as
// the real repository.
type stubStore struct {
	byID   map[uuid.UUID]*models.PaletteRecord
	byName map[string]*models.PaletteRecord
}

func newStubStore() *stubStore {
	return &stubStore{
		byID:   make(map[uuid.UUID]*models.PaletteRecord),
		byName: make(map[string]*models.PaletteRecord),
	}
}

func (s *stubStore) add(rec *models.PaletteRecord) {
	s.byID[rec.ID] = rec
	s.byName[rec.Name] = rec
}

func (s *stubStore) CreatePalette(_ context.Context, name, description string) (*models.PaletteRecord, error) {
	rec := &models.PaletteRecord{
		ID: uuid.New(), Name: name, Description: description,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	s.add(rec)
	return rec, nil
}

func (s *stubStore) GetPalette(_ context.Context, id uuid.UUID) (*models.PaletteRecord, error) {
	rec, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec, nil
}

func (s *stubStore) GetPaletteByName(_ context.Context, name string) (*models.PaletteRecord, error) {
	rec, ok := s.byName[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec, nil
}

func (s *stubStore) ListPalettes(_ context.Context) ([]models.PaletteRecord, error) {
	out := make([]models.PaletteRecord, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *stubStore) SetOverride(_ context.Context, id uuid.UUID, token, hex string) (*models.PaletteOverride, error) {
	tok, err := theme.ParseToken(token)
	if err != nil {
		return nil, err
	}
	c, err := theme.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	rec, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	o := models.PaletteOverride{PaletteID: id, Token: string(tok), Hex: c.Hex()}
	rec.Overrides = append(rec.Overrides, o)
	return &o, nil
}

func (s *stubStore) DeleteOverride(_ context.Context, id uuid.UUID, token string) error {
	if _, err := theme.ParseToken(token); err != nil {
		return err
	}
	if _, ok := s.byID[id]; !ok {
		return storage.ErrNotFound
	}
	return nil
}

func (s *stubStore) DeletePalette(_ context.Context, id uuid.UUID) error {
	rec, ok := s.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	delete(s.byName, rec.Name)
	delete(s.byID, id)
	return nil
}

func newTestServer(store PaletteStore, defaultPalette string) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, display.NewFormatter(time.UTC), "test-key", defaultPalette, log)
}

func doJSON(t *testing.T, s *Server, method, path, body, apiKey string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

// TestHandleTokensFallback verifies that with no default palette configured,
// /api/v1/tokens serves the complete built-in palette.
func TestHandleTokensFallback(t *testing.T) {
	s := newTestServer(newStubStore(), "")
	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/tokens", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	tokens, ok := body["tokens"].(map[string]any)
	if !ok {
		t.Fatalf("missing tokens object in %v", body)
	}
	if len(tokens) != len(theme.AllTokens) {
		t.Errorf("tokens count = %d, want %d", len(tokens), len(theme.AllTokens))
	}
	if tokens["background"] != "#F7F6F2" {
		t.Errorf("background = %v, want #F7F6F2", tokens["background"])
	}
}

// TestHandleTokensDefaultPalette verifies that a configured default palette's
// overrides win while un-overridden tokens keep fallback colors.
func TestHandleTokensDefaultPalette(t *testing.T) {
	store := newStubStore()
	store.add(&models.PaletteRecord{
		ID:   uuid.New(),
		Name: "midnight",
		Overrides: []models.PaletteOverride{
			{Token: "accent", Hex: "#10E080"},
		},
	})
	s := newTestServer(store, "midnight")
	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/tokens", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	tokens := body["tokens"].(map[string]any)
	if tokens["accent"] != "#10E080" {
		t.Errorf("accent = %v, want override #10E080", tokens["accent"])
	}
	if tokens["background"] != "#F7F6F2" {
		t.Errorf("background = %v, want fallback #F7F6F2", tokens["background"])
	}
}

// TestHandleTokensMissingDefaultPalette verifies the server degrades to
// fallback colors when the configured palette does not exist, rather than
// failing the request.
func TestHandleTokensMissingDefaultPalette(t *testing.T) {
	s := newTestServer(newStubStore(), "ghost")
	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/tokens", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	tokens := body["tokens"].(map[string]any)
	if tokens["accent"] != "#5AA469" {
		t.Errorf("accent = %v, want fallback #5AA469", tokens["accent"])
	}
}

// TestHandleSingleToken verifies single-token resolution and the 404 for an
// unknown token name.
func TestHandleSingleToken(t *testing.T) {
	s := newTestServer(newStubStore(), "")

	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/tokens/text_primary", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["hex"] != "#333333" {
		t.Errorf("hex = %v, want #333333", body["hex"])
	}

	rec, _ = doJSON(t, s, http.MethodGet, "/api/v1/tokens/sparkle", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status for unknown token = %d, want 404", rec.Code)
	}
}

// TestCatalogEndpoints verifies each catalog endpoint returns one entry per
// enum variant.
func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(newStubStore(), "")
	cases := []struct {
		path string
		want int
	}{
		{"/api/v1/catalog/focus", len(display.AllFocusTypes)},
		{"/api/v1/catalog/difficulty", len(display.AllDifficultyLevels)},
		{"/api/v1/catalog/equipment", len(display.AllEquipmentTypes)},
		{"/api/v1/catalog/timeofday", len(display.AllTimesOfDay)},
		{"/api/v1/catalog/mood", len(display.AllMoodStates)},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", tc.path, rec.Code)
			continue
		}
		var entries []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Errorf("%s: decode: %v", tc.path, err)
			continue
		}
		if len(entries) != tc.want {
			t.Errorf("%s: %d entries, want %d", tc.path, len(entries), tc.want)
		}
	}
}

// TestPreviewDuration verifies the duration preview, including truncation.
func TestPreviewDuration(t *testing.T) {
	s := newTestServer(newStubStore(), "")

	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/preview/duration?seconds=90", "", "")
	if rec.Code != http.StatusOK || body["formatted"] != "1 min" {
		t.Errorf("preview 90s = %d %v, want 200 \"1 min\"", rec.Code, body["formatted"])
	}

	rec, _ = doJSON(t, s, http.MethodGet, "/api/v1/preview/duration", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing seconds: status = %d, want 400", rec.Code)
	}
}

// TestPreviewTarget verifies the target preview branches over query params.
func TestPreviewTarget(t *testing.T) {
	s := newTestServer(newStubStore(), "")
	cases := []struct {
		query string
		want  string
	}{
		{"sets=3&reps=10", "3 sets × 10 reps"},
		{"sets=3&reps=10&duration=95", "3 sets × 10 reps"},
		{"duration=95", "1:35"},
		{"duration=45", "45s"},
		{"", "As prescribed"},
	}
	for _, tc := range cases {
		rec, body := doJSON(t, s, http.MethodGet, "/api/v1/preview/target?"+tc.query, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("query %q: status = %d", tc.query, rec.Code)
			continue
		}
		if body["formatted"] != tc.want {
			t.Errorf("query %q: formatted = %v, want %q", tc.query, body["formatted"], tc.want)
		}
	}

	rec, _ := doJSON(t, s, http.MethodGet, "/api/v1/preview/target?sets=three", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed sets: status = %d, want 400", rec.Code)
	}
}

// TestPreviewSchedule verifies scheduled time formatting over the API.
func TestPreviewSchedule(t *testing.T) {
	s := newTestServer(newStubStore(), "")
	rec, body := doJSON(t, s, http.MethodGet, "/api/v1/preview/schedule?at=2026-03-07T15:45:00Z", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["time"] != "3:45 PM" {
		t.Errorf("time = %v, want \"3:45 PM\"", body["time"])
	}
	if body["date_time"] != "Mar 7, 2026 at 3:45 PM" {
		t.Errorf("date_time = %v, want \"Mar 7, 2026 at 3:45 PM\"", body["date_time"])
	}
}

// TestPaletteCRUD walks create → override → resolve → delete through the
// router, including the API key gate on mutations.
func TestPaletteCRUD(t *testing.T) {
	s := newTestServer(newStubStore(), "")

	// Mutation without a key is rejected.
	rec, _ := doJSON(t, s, http.MethodPost, "/api/v1/palettes", `{"name":"dusk"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create without key: status = %d, want 401", rec.Code)
	}

	rec, body := doJSON(t, s, http.MethodPost, "/api/v1/palettes", `{"name":"dusk","description":"evening palette"}`, "test-key")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201", rec.Code)
	}
	id := body["id"].(string)

	rec, _ = doJSON(t, s, http.MethodPut, "/api/v1/palettes/"+id+"/overrides/accent", `{"hex":"#224488"}`, "test-key")
	if rec.Code != http.StatusOK {
		t.Fatalf("set override: status = %d, want 200", rec.Code)
	}

	rec, body = doJSON(t, s, http.MethodGet, "/api/v1/palettes/"+id+"/resolved", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("resolved: status = %d, want 200", rec.Code)
	}
	tokens := body["tokens"].(map[string]any)
	if tokens["accent"] != "#224488" {
		t.Errorf("resolved accent = %v, want #224488", tokens["accent"])
	}
	if tokens["background"] != "#F7F6F2" {
		t.Errorf("resolved background = %v, want #F7F6F2", tokens["background"])
	}

	rec, _ = doJSON(t, s, http.MethodDelete, "/api/v1/palettes/"+id, "", "test-key")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d, want 204", rec.Code)
	}

	rec, _ = doJSON(t, s, http.MethodGet, "/api/v1/palettes/"+id, "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}
}

// TestSetOverrideValidation verifies bad tokens and bad hex values are 400s
// and never hit the store.
func TestSetOverrideValidation(t *testing.T) {
	store := newStubStore()
	rec0, _ := store.CreatePalette(context.Background(), "dusk", "")
	s := newTestServer(store, "")

	rec, _ := doJSON(t, s, http.MethodPut, "/api/v1/palettes/"+rec0.ID.String()+"/overrides/sparkle", `{"hex":"#224488"}`, "test-key")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown token: status = %d, want 400", rec.Code)
	}

	rec, _ = doJSON(t, s, http.MethodPut, "/api/v1/palettes/"+rec0.ID.String()+"/overrides/accent", `{"hex":"banana"}`, "test-key")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad hex: status = %d, want 400", rec.Code)
	}

	rec, _ = doJSON(t, s, http.MethodPut, "/api/v1/palettes/"+uuid.NewString()+"/overrides/accent", `{"hex":"#224488"}`, "test-key")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing palette: status = %d, want 404", rec.Code)
	}
}
