package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestMiddleware(t *testing.T, cfg Config, reg prometheus.Registerer) (Middleware, scope.Manager) {
	t.Helper()
	m, err := scope.New(scope.Config{SecretKey: "test-secret"})
	require.NoError(t, err)
	return New(log.NewNop(), m, cfg, reg), m
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw, manager := newTestMiddleware(t, Config{}, nil)
	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		require.True(t, ok)
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	userToken, err := manager.Issue(scope.Payload{UserID: "u-1", Role: model.RoleUser}, time.Hour)
	require.NoError(t, err)
	adminToken, err := manager.Issue(scope.Payload{UserID: "u-2", Role: model.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/me", "", http.StatusUnauthorized},
		{"malformed header", "/me", "Token abc", http.StatusUnauthorized},
		{"bad token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + userToken, http.StatusOK},
		{"lowercase scheme", "/me", "bearer " + userToken, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(r, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	mw, manager := newTestMiddleware(t, Config{}, nil)
	r := gin.New()
	r.GET("/", mw.OptionalAuth(), func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	token, err := manager.Issue(scope.Payload{UserID: "u-9"}, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = serve(r, req)
	assert.Equal(t, "u-9", w.Body.String())
}

func TestRequestID(t *testing.T) {
	mw, _ := newTestMiddleware(t, Config{}, nil)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mw, _ := newTestMiddleware(t, Config{RequestsPerMinute: 60}, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Burst is a tenth of the per-minute limit.
	for i := 0; i < 6; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:1234"
	w = serve(r, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw, _ := newTestMiddleware(t, Config{}, nil)
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw, _ := newTestMiddleware(t, Config{}, reg)
	r := gin.New()
	r.Use(mw.Metrics())
	r.GET("/laptops/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/laptops/a", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/laptops/b", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, promtest.ToFloat64(mw.metrics.requests.WithLabelValues("/laptops/:slug", "GET", "200")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mw.metrics.requests.WithLabelValues("unmatched", "GET", "404")))
}
