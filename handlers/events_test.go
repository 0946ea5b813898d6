package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/events"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/stretchr/testify/require"
)

func newEventsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h := NewEventsHandler(events.NewService(events.NewKVRepository(storage.NewMemoryKV())))
	api := g.Group("/api")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return g
}

func TestEventsHandler_ListSortedByDate(t *testing.T) {
	g := newEventsRouter(t)

	// a 2024 picnic lands after both 2023 seed events
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events",
		strings.NewReader(`{"title":"Spring Picnic","event_date":"2024-06-01","location":"Riverside Park"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/events", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	require.Equal(t, "2023-11-20", list[0].EventDate)
	require.Equal(t, "2023-12-24", list[1].EventDate)
	require.Equal(t, "Spring Picnic", list[2].Title)
}

func TestEventsHandler_Delete(t *testing.T) {
	g := newEventsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	g.ServeHTTP(w, req)
	var list []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/events/"+list[0].ID, nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/events", nil)
	g.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
}
