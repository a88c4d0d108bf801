package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/domain/models"
	"github.com/adiouf/finsight/internal/service/chat"
)

// ChatHandler exposes the conversational endpoint over HTTP.
type ChatHandler struct {
	svc    chat.Service
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc chat.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// Ask answers a free-text financial question.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	answer, err := h.svc.Ask(c.Request.Context(), req.Query)
	if err != nil {
		h.logger.Error("failed answering query", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer query"})
		return
	}

	c.JSON(http.StatusOK, answer)
}
