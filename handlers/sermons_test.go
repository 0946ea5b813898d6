package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/sermons"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/stretchr/testify/require"
)

func newSermonsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	h := NewSermonsHandler(sermons.NewService(sermons.NewKVRepository(storage.NewMemoryKV())))
	api := g.Group("/api")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return g
}

func TestSermonsHandler_ListSeedsOnFirstRead(t *testing.T) {
	g := newSermonsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sermons", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Sermon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	require.Equal(t, "1", list[0].ID)
}

func TestSermonsHandler_CreateGetDelete(t *testing.T) {
	g := newSermonsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sermons",
		strings.NewReader(`{"title":"Advent Hope","date":"2023-12-03","preacher":"Pastor John Adewale"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Sermon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// the new sermon shows up first in the archive
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/sermons", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Sermon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 4)
	require.Equal(t, created.ID, list[0].ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/sermons/"+created.ID, nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/sermons/"+created.ID, nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/sermons/"+created.ID, nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSermonsHandler_CreateRejectsMissingTitle(t *testing.T) {
	g := newSermonsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sermons",
		strings.NewReader(`{"date":"2023-12-03","preacher":"Pastor John Adewale"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
