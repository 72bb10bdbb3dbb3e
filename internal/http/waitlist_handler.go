package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/service"
)

// WaitlistHandler mantiene dependencias para el endpoint de waitlist.
type WaitlistHandler struct {
	logger *zap.Logger
	svc    *service.WaitlistService
}

func NewWaitlistHandler(logger *zap.Logger, svc *service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{logger: logger, svc: svc}
}

// Join maneja POST /api/waitlist.
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Email           string  `json:"email" binding:"required,email"`
		TravelInterests *string `json:"travel_interests"`
		Newsletter      bool    `json:"newsletter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid waitlist request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	entry, err := h.svc.Join(c.Request.Context(), service.JoinInput{
		Name:            req.Name,
		Email:           req.Email,
		TravelInterests: req.TravelInterests,
		Newsletter:      req.Newsletter,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		if errors.Is(err, service.ErrInvalidWaitlistInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("waitlist join failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not join waitlist"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
