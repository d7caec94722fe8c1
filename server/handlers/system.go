package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractserver/database"
)

// SystemHandler служебные эндпоинты сервера.
type SystemHandler struct {
	db *database.ServiceDB
}

// NewSystemHandler создает новый служебный обработчик.
func NewSystemHandler(db *database.ServiceDB) *SystemHandler {
	return &SystemHandler{db: db}
}

// HandleHealth проверка работоспособности сервера и БД.
// @Summary Проверка работоспособности
// @Description Возвращает состояние сервера и сервисной БД.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Сервер работает"
// @Failure 503 {object} HealthResponse "БД недоступна"
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	response := HealthResponse{Status: "ok", Database: "ok"}

	if err := h.db.Ping(); err != nil {
		response.Status = "degraded"
		response.Database = err.Error()
		SendJSONResponse(c, http.StatusServiceUnavailable, response)
		return
	}

	if count, err := h.db.CountOrders(); err == nil {
		response.Orders = count
	}

	SendJSONResponse(c, http.StatusOK, response)
}
