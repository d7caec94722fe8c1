// Package errors — ошибки приложения с HTTP статусом и контекстом.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError представляет ошибку приложения с HTTP статусом и контекстом.
type AppError struct {
	Code    int    `json:"status_code"` // HTTP статус код
	Message string `json:"message"`     // Сообщение для пользователя
	Err     error  `json:"-"`           // Внутренняя ошибка для логов, не сериализуется
	Context string `json:"-"`           // Дополнительный контекст (функция, параметры)
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode возвращает HTTP статус код ошибки.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage возвращает сообщение для пользователя.
func (e *AppError) UserMessage() string {
	return e.Message
}

// WithContext добавляет контекст к ошибке.
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError создает ошибку 404 Not Found.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError создает ошибку 400 Bad Request.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewInternalError создает ошибку 500 Internal Server Error.
// Для пользователя возвращается общее сообщение, детали только в логах.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Внутренняя ошибка сервера",
		Err:     errors.Join(errors.New(message), err),
	}
}
