// Package handlers — HTTP-обработчики API сервера договоров.
package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "contractserver/server/errors"
	"contractserver/server/middleware"
)

// SendJSONResponse отправляет JSON ответ через Gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError отправляет JSON ошибку через Gin context и логирует её.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	slog.Error("Gin HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", middleware.GetRequestIDFromGin(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// HandleError разворачивает AppError в соответствующий HTTP-ответ;
// прочие ошибки отдаются как 500 с общим сообщением.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		slog.Error("application error",
			"error", appErr.Error(),
			"context", appErr.Context,
			"request_id", middleware.GetRequestIDFromGin(c),
		)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	slog.Error("unexpected error", "error", err, "request_id", middleware.GetRequestIDFromGin(c))
	SendJSONError(c, 500, "Внутренняя ошибка сервера")
}
