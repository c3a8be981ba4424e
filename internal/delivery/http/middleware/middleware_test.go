package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techflow-web-backend/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get("RequestID")
		c.String(http.StatusOK, id.(string))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://techflowai.co/"}, true))
	r.POST("/v1/contact", okHandler)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/v1/contact", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://techflowai.co")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://techflowai.co", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("http://localhost:3000")
	assert.Equal(t, http.StatusForbidden, w.Code, "localhost is refused in production")
}

func TestErrorHandler(t *testing.T) {
	newRouter := func(isProduction bool, err error) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler(isProduction))
		r.GET("/", func(c *gin.Context) { _ = c.Error(err) })
		return r
	}

	t.Run("Validation error carries fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		fields := []map[string]string{{"field": "email", "message": "bad"}}
		newRouter(true, apperror.Validation("Datos inválidos", fields, nil)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Datos inválidos","fields":[{"field":"email","message":"bad"}]}`, w.Body.String())
	})

	t.Run("Internal details hidden in production", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(true, apperror.Internal("Error al procesar el formulario", errors.New("template: boom"))).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Error al procesar el formulario","details":"internal processing error"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("Internal details shown in development", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(false, apperror.Internal("Error al procesar el formulario", errors.New("template: boom"))).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.JSONEq(t, `{"success":false,"error":"Error al procesar el formulario","details":"template: boom"}`, w.Body.String())
	})

	t.Run("Unknown error is generic", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(false, errors.New("pq: secret")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})
}

func TestRateLimitMiddleware_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(RateLimitMiddleware(RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "rl:test:", Client: client}))
	r.POST("/", okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"success":false,"error":"Demasiadas solicitudes. Intenta de nuevo más tarde."}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
	assert.True(t, mr.Exists("rl:test:192.0.2.1"))
}

func TestRateLimitMiddleware_FallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	mr.Close()

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(RateLimitMiddleware(RateLimitConfig{Limit: 1, Window: time.Minute, KeyPrefix: "rl:mem:", Client: client}))
	r.POST("/", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMemoryStore_SweepsExpiredEntries(t *testing.T) {
	s := &memoryStore{}
	start := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	count, _ := s.hit("rl:mem:a", time.Minute, start)
	assert.Equal(t, 1, count)
	count, _ = s.hit("rl:mem:a", time.Minute, start.Add(time.Second))
	assert.Equal(t, 2, count)

	s.hit("rl:mem:b", time.Minute, start.Add(2*time.Minute))
	_, ok := s.entries.Load("rl:mem:a")
	assert.True(t, ok, "no sweep before the interval")

	later := start.Add(sweepInterval + time.Second)
	count, _ = s.hit("rl:mem:b", time.Minute, later)
	assert.Equal(t, 1, count, "expired window restarts")
	_, ok = s.entries.Load("rl:mem:a")
	assert.False(t, ok, "expired entry swept")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware(true))
	r.POST("/", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
