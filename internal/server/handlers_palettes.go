package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/claude/repstyle/internal/storage"
	"github.com/claude/repstyle/internal/theme"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleListPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := s.store.ListPalettes(r.Context())
	if err != nil {
		s.log.Error("list palettes", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, palettes)
}

func (s *Server) handleCreatePalette(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	rec, err := s.store.CreatePalette(r.Context(), req.Name, req.Description)
	if err != nil {
		s.log.Error("create palette", "name", req.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetPalette(w http.ResponseWriter, r *http.Request) {
	id, ok := s.paletteID(w, r)
	if !ok {
		return
	}
	rec, err := s.store.GetPalette(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, "get palette", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleResolvedPalette(w http.ResponseWriter, r *http.Request) {
	id, ok := s.paletteID(w, r)
	if !ok {
		return
	}
	rec, err := s.store.GetPalette(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, "resolve palette", err)
		return
	}
	p := theme.ResolveAll(theme.Overlay(storage.ResolverFor(rec), theme.Fallback))
	writeJSON(w, http.StatusOK, map[string]any{
		"palette": rec.Name,
		"tokens":  p.Hex(),
	})
}

func (s *Server) handleDeletePalette(w http.ResponseWriter, r *http.Request) {
	id, ok := s.paletteID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeletePalette(r.Context(), id); err != nil {
		s.writeStoreError(w, "delete palette", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := s.paletteID(w, r)
	if !ok {
		return
	}
	var req struct {
		Hex string `json:"hex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	override, err := s.store.SetOverride(r.Context(), id, chi.URLParam(r, "token"), req.Hex)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "palette not found"})
		case errors.Is(err, theme.ErrUnknownToken):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			// Covers malformed hex as well as storage failures; the hex
			// parse error message names the offending value.
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return
	}
	writeJSON(w, http.StatusOK, override)
}

func (s *Server) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := s.paletteID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteOverride(r.Context(), id, chi.URLParam(r, "token"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "override not found"})
		case errors.Is(err, theme.ErrUnknownToken):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			s.log.Error("delete override", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// paletteID parses the {id} URL parameter, writing a 400 on failure.
func (s *Server) paletteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid palette ID"})
		return uuid.UUID{}, false
	}
	return id, true
}

// writeStoreError maps storage errors to HTTP statuses for read paths.
func (s *Server) writeStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "palette not found"})
		return
	}
	s.log.Error(op, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
