package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/messages"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/stretchr/testify/require"
)

func newMessagesRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h := NewMessagesHandler(messages.NewService(messages.NewKVRepository(storage.NewMemoryKV())))
	api := g.Group("/api")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return g
}

func TestMessagesHandler_SendAndRead(t *testing.T) {
	g := newMessagesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"What time is Sunday service?"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Jane", list[0].Name)
	require.False(t, list[0].Read)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/admin/messages/"+list[0].ID+"/read", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	g.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.True(t, list[0].Read)
}

func TestMessagesHandler_SendRejectsBadEmail(t *testing.T) {
	g := newMessagesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Jane","email":"not-an-email","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
