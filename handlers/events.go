package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/events"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// EventsHandler exposes upcoming events: public reads, admin writes.
type EventsHandler struct {
	svc *events.Service
}

func NewEventsHandler(svc *events.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func (h *EventsHandler) RegisterPublic(rg *gin.RouterGroup) {
	e := rg.Group("/events")
	e.GET("", h.List)
}

func (h *EventsHandler) RegisterAdmin(rg *gin.RouterGroup) {
	e := rg.Group("/events")
	e.POST("", h.Create)
	e.DELETE("/:id", h.Delete)
}

type createEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	EventDate   string `json:"event_date" binding:"required"`
	Time        string `json:"time"`
}

// List returns events sorted soonest first
func (h *EventsHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EventsHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.svc.Add(c.Request.Context(), models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		EventDate:   req.EventDate,
		Time:        req.Time,
	})
	if err != nil {
		logger.Errorf("failed to add event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add event"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EventsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}
