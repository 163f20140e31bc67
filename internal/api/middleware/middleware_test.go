package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docuflow-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupRouter(RequestID())

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	id := recorder.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	router := setupRouter(RequestID())

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "incoming-id")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "incoming-id", recorder.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("something broke")
	})

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestCORSAllowedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := setupRouter(CORS(cfg))

	req, _ := http.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRateLimit(t *testing.T) {
	router := setupRouter(RateLimit(2))

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "60", recorder.Header().Get("Retry-After"))
}

func TestRateLimitWindowSlides(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)
	now := time.Now()

	assert.True(t, rl.allow("1.2.3.4", now))
	assert.False(t, rl.allow("1.2.3.4", now.Add(time.Second)))
	assert.True(t, rl.allow("1.2.3.4", now.Add(2*time.Minute)))
}

func TestRateLimitSweep(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	now := time.Now()

	assert.True(t, rl.allow("1.2.3.4", now))
	assert.True(t, rl.allow("5.6.7.8", now))

	// entries still inside the window survive the sweep
	rl.sweep(now.Add(30 * time.Second))
	assert.Len(t, rl.clients, 2)

	// once everything aged out the IPs are gone entirely
	rl.sweep(now.Add(2 * time.Minute))
	assert.Empty(t, rl.clients)
}

func TestRateLimitDisabled(t *testing.T) {
	router := setupRouter(RateLimit(0))

	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}
}
