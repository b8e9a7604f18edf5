package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/repstyle/internal/display"
	"github.com/claude/repstyle/internal/storage"
	"github.com/claude/repstyle/internal/theme"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// defaultResolver builds the resolver chain for the configured default
// palette. A missing palette degrades to fallback colors; the app must never
// launch without a theme.
func (s *Server) defaultResolver(r *http.Request) theme.Resolver {
	if s.defaultPalette == "" {
		return theme.Fallback
	}
	rec, err := s.store.GetPaletteByName(r.Context(), s.defaultPalette)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("default palette lookup", "palette", s.defaultPalette, "error", err)
		}
		return theme.Fallback
	}
	return theme.Overlay(storage.ResolverFor(rec), theme.Fallback)
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	p := theme.ResolveAll(s.defaultResolver(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"palette": s.defaultPalette,
		"tokens":  p.Hex(),
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	tok, err := theme.ParseToken(chi.URLParam(r, "token"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	c, ok := s.defaultResolver(r).Resolve(tok)
	if !ok {
		c, _ = theme.Fallback.Resolve(tok)
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"token": string(tok),
		"hex":   c.Hex(),
	})
}

func (s *Server) handleFocusCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, func() (any, error) {
		entries, err := display.FocusCatalog()
		return entries, err
	})
}

func (s *Server) handleDifficultyCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, func() (any, error) {
		entries, err := display.DifficultyCatalog()
		return entries, err
	})
}

func (s *Server) handleEquipmentCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, func() (any, error) {
		entries, err := display.EquipmentCatalog()
		return entries, err
	})
}

func (s *Server) handleTimeOfDayCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, func() (any, error) {
		entries, err := display.TimeOfDayCatalog()
		return entries, err
	})
}

func (s *Server) handleMoodCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, func() (any, error) {
		entries, err := display.MoodCatalog()
		return entries, err
	})
}

// writeCatalog renders a catalog builder's result. A builder error means a
// variant list and a mapper are out of sync, which the display tests catch
// before release; surface it as a 500 rather than a partial catalog.
func (s *Server) writeCatalog(w http.ResponseWriter, build func() (any, error)) {
	entries, err := build()
	if err != nil {
		s.log.Error("catalog build", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePreviewDuration(w http.ResponseWriter, r *http.Request) {
	secs, err := strconv.Atoi(r.URL.Query().Get("seconds"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seconds parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"formatted": s.fmtr.Duration(secs)})
}

func (s *Server) handlePreviewTarget(w http.ResponseWriter, r *http.Request) {
	sets, err := optionalInt(r, "sets")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	reps, err := optionalInt(r, "reps")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	duration, err := optionalInt(r, "duration")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"formatted": s.fmtr.Target(sets, reps, duration)})
}

func (s *Server) handlePreviewSchedule(w http.ResponseWriter, r *http.Request) {
	at := r.URL.Query().Get("at")
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at parameter must be RFC 3339"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"time":      s.fmtr.ScheduledTime(ts),
		"date_time": s.fmtr.ScheduledDateTime(ts),
	})
}

// optionalInt reads an optional integer query parameter. Absent returns nil;
// present but malformed is an error.
func optionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " parameter must be an integer")
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
