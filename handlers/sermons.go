package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/sermons"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// SermonsHandler exposes the sermon archive: public reads, admin writes.
type SermonsHandler struct {
	svc *sermons.Service
}

func NewSermonsHandler(svc *sermons.Service) *SermonsHandler {
	return &SermonsHandler{svc: svc}
}

// RegisterPublic mounts the read-only routes
func (h *SermonsHandler) RegisterPublic(rg *gin.RouterGroup) {
	s := rg.Group("/sermons")
	s.GET("", h.List)
	s.GET("/:id", h.Get)
}

// RegisterAdmin mounts the mutating routes; the caller wraps the group with
// auth and role middleware.
func (h *SermonsHandler) RegisterAdmin(rg *gin.RouterGroup) {
	s := rg.Group("/sermons")
	s.POST("", h.Create)
	s.DELETE("/:id", h.Delete)
}

type createSermonRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Thumbnail   string `json:"thumbnail"`
	Date        string `json:"date" binding:"required"`
	Preacher    string `json:"preacher" binding:"required"`
}

func (h *SermonsHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list sermons: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sermons"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SermonsHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err == sermons.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "sermon not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get sermon"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SermonsHandler) Create(c *gin.Context) {
	var req createSermonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.Add(c.Request.Context(), models.Sermon{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Date:        req.Date,
		Preacher:    req.Preacher,
	})
	if err != nil {
		logger.Errorf("failed to add sermon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add sermon"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SermonsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sermon"})
		return
	}
	c.Status(http.StatusNoContent)
}
