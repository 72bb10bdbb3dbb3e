package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints de chat.
type ChatHandler struct {
	logger *zap.Logger
	svc    *service.ChatService
}

func NewChatHandler(logger *zap.Logger, svc *service.ChatService) *ChatHandler {
	return &ChatHandler{logger: logger, svc: svc}
}

// CreateChat maneja POST /api/chat.
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	// El body es opcional; un title ausente usa el default.
	_ = c.ShouldBindJSON(&req)

	chat, err := h.svc.CreateChat(c.Request.Context(), req.Title, authUserID(c))
	if err != nil {
		h.logger.Error("create chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create chat"})
		return
	}

	c.JSON(http.StatusCreated, chat)
}

// GetChat maneja GET /api/chat/:id.
func (h *ChatHandler) GetChat(c *gin.Context) {
	chat, messages, err := h.svc.GetChat(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
			return
		}
		h.logger.Error("get chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not retrieve chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": chat, "messages": messages})
}

// PostMessage maneja POST /api/chat/:id/message.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	userMsg, assistantMsg, err := h.svc.PostMessage(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChatNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		case errors.Is(err, service.ErrEmptyMessageContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("post message failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process message"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_message":      userMsg,
		"assistant_message": assistantMsg,
	})
}
