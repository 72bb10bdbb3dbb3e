package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"travelpal/internal/cache"
)

// emptyResults es el sustituto cuando no se puede consultar al proveedor.
var emptyResults = json.RawMessage(`{"results":[]}`)

// Client envuelve la API de Google Places. Search devuelve el JSON del
// proveedor tal cual (el cliente lo renderiza directo); sin credencial
// o ante un fallo devuelve un set de resultados vacio, nunca un error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger
}

func NewClient(apiKey string, c *cache.Cache, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/place",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      c,
		logger:     logger,
	}
}

// Search ejecuta una busqueda de texto, con tipo opcional.
func (c *Client) Search(ctx context.Context, query, placeType string) json.RawMessage {
	if c.apiKey == "" {
		c.logger.Warn("no places api key configured, returning empty results")
		return emptyResults
	}

	cacheKey := fmt.Sprintf("places:%s:%s", strings.ToLower(query), placeType)
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		return raw
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.apiKey)
	if placeType != "" {
		q.Set("type", placeType)
	}

	body, err := c.get(ctx, c.baseURL+"/textsearch/json?"+q.Encode())
	if err != nil {
		c.logger.Warn("places search failed, returning empty results",
			zap.String("query", query),
			zap.Error(err),
		)
		return emptyResults
	}

	c.cache.Set(ctx, cacheKey, body)
	return body
}

// Details obtiene el detalle de un lugar; nil cuando no hay credencial
// o el proveedor falla.
func (c *Client) Details(ctx context.Context, placeID string) json.RawMessage {
	if c.apiKey == "" {
		c.logger.Warn("no places api key configured, returning empty details")
		return nil
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,formatted_address,rating,opening_hours,website,price_level,photos")
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/details/json?"+q.Encode())
	if err != nil {
		c.logger.Warn("places details failed", zap.String("place_id", placeID), zap.Error(err))
		return nil
	}

	var wrapper struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil
	}
	return wrapper.Result
}

func (c *Client) get(ctx context.Context, fullURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
