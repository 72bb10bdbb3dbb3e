package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/weather"
)

// WeatherHandler mantiene dependencias para el endpoint de clima.
type WeatherHandler struct {
	logger *zap.Logger
	client *weather.Client
}

func NewWeatherHandler(logger *zap.Logger, client *weather.Client) *WeatherHandler {
	return &WeatherHandler{logger: logger, client: client}
}

// Forecast maneja GET /api/weather?location=...&days=N.
func (h *WeatherHandler) Forecast(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required"})
		return
	}

	days := 5
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	c.JSON(http.StatusOK, h.client.Forecast(c.Request.Context(), location, days))
}
