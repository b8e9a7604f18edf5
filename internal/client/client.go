// Package client implements the repstyle-sync side: fetching resolved
// palettes from a RepStyle server and caching them in a local SQLite database
// so offline tooling can keep rendering with the last known colors.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches resolved palettes from the RepStyle server over HTTP.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the RepStyle server.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ResolvedPalette is the wire shape of a resolved token set.
type ResolvedPalette struct {
	Palette string            `json:"palette"`
	Tokens  map[string]string `json:"tokens"`
}

type paletteListEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchDefault retrieves the server's default resolved palette.
// Retries up to 3 times with exponential backoff on failure.
func (c *Client) FetchDefault() (*ResolvedPalette, error) {
	return c.fetchResolved(c.serverURL + "/api/v1/tokens")
}

// FetchByName retrieves a named palette's resolved tokens. The REST API
// addresses palettes by ID, so this lists first to find the ID.
func (c *Client) FetchByName(name string) (*ResolvedPalette, error) {
	resp, err := c.httpClient.Get(c.serverURL + "/api/v1/palettes")
	if err != nil {
		return nil, fmt.Errorf("listing palettes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("palette list failed (status %d): %s", resp.StatusCode, body)
	}

	var palettes []paletteListEntry
	if err := json.NewDecoder(resp.Body).Decode(&palettes); err != nil {
		return nil, fmt.Errorf("decoding palette list: %w", err)
	}

	for _, p := range palettes {
		if p.Name == name {
			return c.fetchResolved(c.serverURL + "/api/v1/palettes/" + p.ID + "/resolved")
		}
	}
	return nil, fmt.Errorf("palette %q not found on server", name)
}

func (c *Client) fetchResolved(url string) (*ResolvedPalette, error) {
	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		resp, err := c.httpClient.Get(url)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("palette fetch failed (status %d): %s", resp.StatusCode, body)
			continue
		}

		var palette ResolvedPalette
		if err := json.Unmarshal(body, &palette); err != nil {
			return nil, fmt.Errorf("decoding palette: %w", err)
		}
		return &palette, nil
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}
