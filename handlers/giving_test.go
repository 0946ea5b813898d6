package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/giving"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/stretchr/testify/require"
)

func newGivingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	svc := giving.NewService(giving.NewKVRepository(storage.NewMemoryKV()), giving.NewSimulatedGateway(0))
	h := NewGivingHandler(svc)
	api := g.Group("/api")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return g
}

func TestGivingHandler_Donate(t *testing.T) {
	g := newGivingRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/giving/donate",
		strings.NewReader(`{"email":"giver@example.com","amount":50,"purpose":"Building Fund"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var d models.Donation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	require.Regexp(t, `^PAY-[A-Z0-9]{7}$`, d.Reference)
	require.Equal(t, 50.0, d.Amount)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/giving/donations", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Donation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, d.Reference, list[0].Reference)
}

func TestGivingHandler_DonateRejectsNonPositiveAmount(t *testing.T) {
	g := newGivingRouter(t)

	for _, body := range []string{
		`{"email":"giver@example.com","amount":0,"purpose":"Tithe"}`,
		`{"email":"giver@example.com","amount":-5,"purpose":"Tithe"}`,
		`{"amount":50,"purpose":"Tithe"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/giving/donate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		g.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}
