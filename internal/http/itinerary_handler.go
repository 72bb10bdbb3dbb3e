package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"travelpal/internal/domain"
	"travelpal/internal/repository"
	"travelpal/internal/service"
)

// ItineraryHandler mantiene dependencias para los endpoints de itinerarios.
type ItineraryHandler struct {
	logger      *zap.Logger
	itineraries repository.ItineraryRepository
	svc         *service.ItineraryService
}

func NewItineraryHandler(logger *zap.Logger, itineraries repository.ItineraryRepository, svc *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{logger: logger, itineraries: itineraries, svc: svc}
}

// Create maneja POST /api/itinerary.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req struct {
		ChatID      *string                 `json:"chat_id"`
		Destination string                  `json:"destination" binding:"required"`
		StartDate   *string                 `json:"start_date"`
		EndDate     *string                 `json:"end_date"`
		Title       string                  `json:"title" binding:"required"`
		Budget      *int                    `json:"budget"`
		Content     domain.ItineraryContent `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create itinerary request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	itinerary := domain.Itinerary{
		ID:          uuid.NewString(),
		UserID:      authUserID(c),
		ChatID:      req.ChatID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Title:       req.Title,
		Budget:      req.Budget,
		Content:     req.Content,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.itineraries.Create(c.Request.Context(), itinerary); err != nil {
		h.logger.Error("create itinerary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create itinerary"})
		return
	}

	c.JSON(http.StatusCreated, itinerary)
}

// Get maneja GET /api/itinerary/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	itinerary, err := h.itineraries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		h.logger.Error("get itinerary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve itinerary"})
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// Generate maneja POST /api/itinerary/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req struct {
		Destination  string `json:"destination" binding:"required"`
		DurationDays int    `json:"duration_days" binding:"required,gt=0"`
		Preferences  string `json:"preferences" binding:"required"`
		Budget       *int   `json:"budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate itinerary request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	content, err := h.svc.Generate(c.Request.Context(), service.GenerateInput{
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Preferences:  req.Preferences,
		Budget:       req.Budget,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidGenerateInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// La causa va en el mensaje; los callers no reciben codigo estructurado.
		h.logger.Error("generate itinerary failed", zap.Error(err))
		msg := service.ErrGenerationFailed.Error()
		switch {
		case errors.Is(err, service.ErrGenerationQuota),
			errors.Is(err, service.ErrGenerationRateLimited),
			errors.Is(err, service.ErrGenerationAuth):
			msg = err.Error()
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}
