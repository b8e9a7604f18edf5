package client

import (
	"fmt"
	"log/slog"
)

// Syncer pulls resolved palettes from the server into the local cache.
type Syncer struct {
	client *Client
	cache  *Cache
	log    *slog.Logger
}

// NewSyncer creates a Syncer.
func NewSyncer(client *Client, cache *Cache, log *slog.Logger) *Syncer {
	return &Syncer{client: client, cache: cache, log: log}
}

// Sync fetches a palette and stores it in the cache. An empty name syncs the
// server's default palette under the cache key "default". Returns true when
// the cache was updated, false when the palette was already current.
func (s *Syncer) Sync(name string) (bool, error) {
	var (
		palette *ResolvedPalette
		err     error
		key     = name
	)
	if name == "" {
		key = "default"
		palette, err = s.client.FetchDefault()
	} else {
		palette, err = s.client.FetchByName(name)
	}
	if err != nil {
		return false, fmt.Errorf("fetching palette: %w", err)
	}

	hash := HashTokens(palette.Tokens)
	cached, err := s.cache.Hash(key)
	if err != nil {
		return false, fmt.Errorf("reading cache: %w", err)
	}
	if cached == hash {
		s.log.Info("palette unchanged", "palette", key, "tokens", len(palette.Tokens))
		return false, nil
	}

	if err := s.cache.Store(key, hash, palette.Tokens); err != nil {
		return false, fmt.Errorf("caching palette: %w", err)
	}
	s.log.Info("palette cached", "palette", key, "tokens", len(palette.Tokens))
	return true, nil
}
