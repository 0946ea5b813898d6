package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/internal/config"
	"github.com/gracechapel/gracechapel/internal/giving"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/internal/tokens"
	"github.com/stretchr/testify/require"
)

const testSecret = "giving-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := giving.NewService(giving.NewKVRepository(storage.NewMemoryKV()), giving.NewSimulatedGateway(0))
	return setupRouter(svc, tokens.NewVerifier(testSecret))
}

func accessToken(t *testing.T, email, role string) string {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	tok, err := tokens.GenerateAccessToken(cfg, &models.User{Email: email, Role: role}, 15*time.Minute)
	require.NoError(t, err)
	return tok
}

func TestDonateIsPublic(t *testing.T) {
	g := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/giving/donate",
		strings.NewReader(`{"email":"giver@example.com","amount":25,"purpose":"Tithe"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestDonationListRequiresAdmin(t *testing.T) {
	g := newTestRouter(t)

	// anonymous
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/giving/donations", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// authenticated but not admin
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/giving/donations", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, "member@gracechapel.org", models.RoleUser))
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// admin
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/giving/donations", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, "admin@gracechapel.org", models.RoleAdmin))
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
