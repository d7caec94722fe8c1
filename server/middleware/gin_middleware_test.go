package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

// TestGinRequestIDMiddleware проверяет генерацию и проброс request ID
func TestGinRequestIDMiddleware(t *testing.T) {
	router := newTestEngine(GinRequestIDMiddleware())

	// Без заголовка ID генерируется
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected generated X-Request-ID header")
	}

	// Присланный ID сохраняется
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("Expected 'test-id-123', got %q", got)
	}
}

// TestGinCORSMiddleware проверяет CORS заголовки и preflight
func TestGinCORSMiddleware(t *testing.T) {
	router := newTestEngine(GinCORSMiddleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin, got %q", got)
	}

	// Preflight завершается без вызова обработчика
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
}

// TestGinRateLimitMiddleware проверяет срабатывание ограничителя
func TestGinRateLimitMiddleware(t *testing.T) {
	// Один запрос в секунду, burst 2: третий подряд запрос отклоняется
	router := newTestEngine(GinRateLimitMiddleware(1, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("Expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected 429 for third request, got %d", codes[2])
	}
}

// TestGetRequestIDFromGin проверяет извлечение request ID из контекста
func TestGetRequestIDFromGin(t *testing.T) {
	if got := GetRequestIDFromGin(nil); got != "" {
		t.Errorf("Expected empty ID for nil context, got %q", got)
	}

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetRequestIDFromGin(c); got != "" {
		t.Errorf("Expected empty ID for fresh context, got %q", got)
	}

	c.Set("request_id", "abc")
	if got := GetRequestIDFromGin(c); got != "abc" {
		t.Errorf("Expected 'abc', got %q", got)
	}
}
