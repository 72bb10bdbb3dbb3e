package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/places"
)

// PlacesHandler mantiene dependencias para el endpoint de lugares.
type PlacesHandler struct {
	logger *zap.Logger
	client *places.Client
}

func NewPlacesHandler(logger *zap.Logger, client *places.Client) *PlacesHandler {
	return &PlacesHandler{logger: logger, client: client}
}

// Search maneja GET /api/places?query=...&type=... El JSON del proveedor
// pasa directo al cliente.
func (h *PlacesHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	raw := h.client.Search(c.Request.Context(), query, c.Query("type"))
	c.Data(http.StatusOK, "application/json", raw)
}
