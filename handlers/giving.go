package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/giving"
	"github.com/gracechapel/gracechapel/pkg/logger"
	"github.com/gracechapel/gracechapel/pkg/metrics"
)

// GivingHandler exposes the donation flow. Donating is public (the site lets
// visitors give without an account), listing is admin-only.
type GivingHandler struct {
	svc *giving.Service
}

func NewGivingHandler(svc *giving.Service) *GivingHandler {
	return &GivingHandler{svc: svc}
}

func (h *GivingHandler) RegisterPublic(rg *gin.RouterGroup) {
	g := rg.Group("/giving")
	g.POST("/donate", h.Donate)
}

func (h *GivingHandler) RegisterAdmin(rg *gin.RouterGroup) {
	g := rg.Group("/giving")
	g.GET("/donations", h.List)
}

type donateRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Purpose string  `json:"purpose" binding:"required"`
}

// Donate runs the charge through the payment gateway and records the donation.
// A gateway failure leaves no record behind.
func (h *GivingHandler) Donate(c *gin.Context) {
	var req donateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := h.svc.Process(c.Request.Context(), req.Email, req.Amount, req.Purpose)
	if err != nil {
		metrics.DonationsProcessed.WithLabelValues("failed").Inc()
		logger.Errorf("donation failed for %s: %v", req.Email, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment failed"})
		return
	}
	metrics.DonationsProcessed.WithLabelValues("succeeded").Inc()
	c.JSON(http.StatusCreated, d)
}

// List returns donations newest first
func (h *GivingHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list donations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list donations"})
		return
	}
	c.JSON(http.StatusOK, list)
}
