// Package middleware — gin-мидлвары сервера: request ID, CORS,
// логирование и ограничение частоты запросов.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// GinRequestIDMiddleware добавляет уникальный request ID к каждому запросу.
func GinRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// GetRequestIDFromGin извлекает request ID из Gin context.
func GetRequestIDFromGin(c *gin.Context) string {
	if c == nil {
		return ""
	}
	reqID, exists := c.Get("request_id")
	if !exists {
		return ""
	}
	if id, ok := reqID.(string); ok {
		return id
	}
	return ""
}

// GinCORSMiddleware добавляет CORS заголовки: форма оператора живет
// на другом origin.
func GinCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// GinLoggerMiddleware логирует запросы, пропуская служебные эндпоинты.
func GinLoggerMiddleware() gin.HandlerFunc {
	skipPaths := map[string]bool{"/health": true, "/favicon.ico": true}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if skipPaths[path] {
			return
		}

		slog.Info("HTTP request",
			"request_id", GetRequestIDFromGin(c),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}

// GinRateLimitMiddleware ограничивает частоту запросов: разбор брифа
// вызывается формой на каждое изменение текста.
func GinRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 20
	}
	if burst <= 0 {
		burst = 40
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "слишком много запросов, повторите позже",
			})
			return
		}
		c.Next()
	}
}
