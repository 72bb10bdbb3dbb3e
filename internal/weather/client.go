package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"travelpal/internal/cache"
	"travelpal/internal/domain"
)

// Client consulta el pronostico de OpenWeatherMap y lo reduce a una
// lectura por dia calendario. El caller nunca observa un error: sin
// credencial o ante cualquier fallo se devuelven datos sinteticos
// plausibles.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger

	// Inyectables para tests del fallback.
	now     func() time.Time
	randInt func(n int) int
}

var fallbackConditions = []string{"Sunny", "Cloudy", "Partly Cloudy", "Rainy", "Clear"}
var fallbackIcons = []string{"fa-sun", "fa-cloud", "fa-cloud-sun", "fa-cloud-rain", "fa-sun"}

func NewClient(apiKey string, c *cache.Cache, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5/forecast",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      c,
		logger:     logger,
		now:        time.Now,
		randInt:    rand.Intn,
	}
}

// Forecast devuelve hasta `days` lecturas para la ubicacion dada.
func (c *Client) Forecast(ctx context.Context, location string, days int) []domain.Weather {
	if days <= 0 {
		days = 5
	}

	if c.apiKey == "" {
		c.logger.Warn("no weather api key configured, returning mock data")
		return c.mockForecast(days)
	}

	cacheKey := fmt.Sprintf("weather:%s:%d", strings.ToLower(location), days)
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		var cached []domain.Weather
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
	}

	forecasts, err := c.fetch(ctx, location, days)
	if err != nil {
		c.logger.Warn("weather api request failed, returning mock data",
			zap.String("location", location),
			zap.Error(err),
		)
		return c.mockForecast(days)
	}

	if raw, err := json.Marshal(forecasts); err == nil {
		c.cache.Set(ctx, cacheKey, raw)
	}
	return forecasts
}

func (c *Client) fetch(ctx context.Context, location string, days int) ([]domain.Weather, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("units", "imperial")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api error: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var data forecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	// El proveedor entrega lecturas cada 3 horas; tomamos la primera
	// de cada dia calendario hasta completar `days`.
	forecasts := make([]domain.Weather, 0, days)
	seen := make(map[string]bool)
	for _, entry := range data.List {
		date, _, found := strings.Cut(entry.DtTxt, " ")
		if !found || seen[date] || len(forecasts) >= days {
			continue
		}
		seen[date] = true

		condition := ""
		icon := "fa-cloud"
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
			icon = iconForCode(entry.Weather[0].ID)
		}
		forecasts = append(forecasts, domain.Weather{
			Date:        date,
			Temperature: int(entry.Main.Temp + 0.5),
			Condition:   condition,
			Icon:        icon,
		})
	}
	return forecasts, nil
}

// iconForCode mapea codigos de condicion de OpenWeatherMap a clases de
// iconos Font Awesome.
func iconForCode(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "fa-bolt" // Thunderstorm
	case code >= 300 && code < 400:
		return "fa-cloud-rain" // Drizzle
	case code >= 500 && code < 600:
		return "fa-cloud-showers-heavy" // Rain
	case code >= 600 && code < 700:
		return "fa-snowflake" // Snow
	case code >= 700 && code < 800:
		return "fa-smog" // Atmosphere
	case code == 800:
		return "fa-sun" // Clear
	case code > 800:
		return "fa-cloud-sun" // Clouds
	default:
		return "fa-cloud"
	}
}

// mockForecast genera datos sinteticos plausibles: temperaturas acotadas
// (65-75°F) y un set rotativo de condiciones e iconos.
func (c *Client) mockForecast(days int) []domain.Weather {
	forecasts := make([]domain.Weather, 0, days)
	today := c.now()

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		idx := i % len(fallbackConditions)
		forecasts = append(forecasts, domain.Weather{
			Date:        date,
			Temperature: 65 + c.randInt(10),
			Condition:   fallbackConditions[idx],
			Icon:        fallbackIcons[idx],
		})
	}
	return forecasts
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			ID   int    `json:"id"`
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}
