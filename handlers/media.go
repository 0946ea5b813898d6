package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// MediaHandler stores sermon thumbnails and other uploads in object storage
// and hands back presigned URLs the public site can embed.
type MediaHandler struct {
	store *storage.MinIOStorage
}

func NewMediaHandler(store *storage.MinIOStorage) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) RegisterAdmin(rg *gin.RouterGroup) {
	m := rg.Group("/media")
	m.POST("/upload", h.Upload)
	m.GET("/:key/url", h.PresignedURL)
}

func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	key := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := h.store.UploadFile(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("failed to upload %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

func (h *MediaHandler) PresignedURL(c *gin.Context) {
	url, err := h.store.GetPresignedURL(c.Request.Context(), c.Param("key"), 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to presign url"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
