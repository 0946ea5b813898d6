package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/messages"
	"github.com/gracechapel/gracechapel/pkg/logger"
	"github.com/gracechapel/gracechapel/pkg/metrics"
)

// MessagesHandler wires the public contact form and the admin inbox.
type MessagesHandler struct {
	svc *messages.Service
}

func NewMessagesHandler(svc *messages.Service) *MessagesHandler {
	return &MessagesHandler{svc: svc}
}

// RegisterPublic mounts POST /contact
func (h *MessagesHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Send)
}

// RegisterAdmin mounts the inbox routes
func (h *MessagesHandler) RegisterAdmin(rg *gin.RouterGroup) {
	m := rg.Group("/messages")
	m.GET("", h.List)
	m.PUT("/:id/read", h.MarkRead)
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *MessagesHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		logger.Errorf("failed to store contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	metrics.MessagesReceived.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "message received"})
}

// List returns messages newest first
func (h *MessagesHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MessagesHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark message read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}
