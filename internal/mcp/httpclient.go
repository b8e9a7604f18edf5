package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/repstyle/internal/models"
	"github.com/claude/repstyle/internal/storage"
)

// HTTPClient implements DataSource by calling the RepStyle REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// palettes live on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// ListPalettes implements DataSource via GET /api/v1/palettes.
func (c *HTTPClient) ListPalettes(ctx context.Context) ([]models.PaletteRecord, error) {
	body, err := c.get(ctx, "/api/v1/palettes", nil)
	if err != nil {
		return nil, err
	}

	var palettes []models.PaletteRecord
	if err := json.Unmarshal(body, &palettes); err != nil {
		return nil, fmt.Errorf("httpclient: decode palettes: %w", err)
	}
	return palettes, nil
}

// GetPaletteByName implements DataSource. The REST API addresses palettes by
// ID, so this lists first, then fetches the match with its overrides.
func (c *HTTPClient) GetPaletteByName(ctx context.Context, name string) (*models.PaletteRecord, error) {
	palettes, err := c.ListPalettes(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range palettes {
		if p.Name != name {
			continue
		}
		body, err := c.get(ctx, "/api/v1/palettes/"+p.ID.String(), nil)
		if err != nil {
			return nil, err
		}
		var rec models.PaletteRecord
		if err := json.Unmarshal(body, &rec); err != nil {
			return nil, fmt.Errorf("httpclient: decode palette: %w", err)
		}
		return &rec, nil
	}
	return nil, storage.ErrNotFound
}
