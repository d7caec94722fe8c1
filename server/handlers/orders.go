package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"contractserver/database"
	"contractserver/export"
	apperrors "contractserver/server/errors"
)

// OrdersHandler обработчик реестра договоров.
type OrdersHandler struct {
	db       *database.ServiceDB
	exporter *export.Exporter
}

// NewOrdersHandler создает новый обработчик реестра.
func NewOrdersHandler(db *database.ServiceDB) *OrdersHandler {
	return &OrdersHandler{db: db, exporter: export.NewExporter(db)}
}

// HandleListOrders возвращает реестр договоров, свежие первыми.
// @Summary Реестр договоров
// @Description Возвращает сохранённые договоры, отсортированные по дате создания.
// @Tags orders
// @Produce json
// @Param limit query int false "Максимум записей (по умолчанию 500)"
// @Success 200 {object} OrdersResponse "Реестр договоров"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/orders [get]
func (h *OrdersHandler) HandleListOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			appErr := apperrors.NewValidationError("неверный формат limit", err)
			SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
			return
		}
		limit = parsed
	}

	orders, err := h.db.ListOrders(limit)
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось прочитать реестр договоров", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, OrdersResponse{Total: len(orders), Orders: orders})
}

// HandleGetOrder возвращает один договор по идентификатору.
// @Summary Договор по идентификатору
// @Description Возвращает запись реестра вместе с исходным брифом.
// @Tags orders
// @Produce json
// @Param id path int true "Идентификатор договора"
// @Success 200 {object} database.OrderRow "Договор"
// @Failure 400 {object} ErrorResponse "Неверный идентификатор"
// @Failure 404 {object} ErrorResponse "Договор не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/orders/{id} [get]
func (h *OrdersHandler) HandleGetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		appErr := apperrors.NewValidationError("неверный идентификатор договора", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	order, err := h.db.GetOrder(id)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			HandleError(c, apperrors.NewNotFoundError("договор не найден", err).WithContext("HandleGetOrder"))
			return
		}
		HandleError(c, apperrors.NewInternalError("не удалось прочитать договор", err).WithContext("HandleGetOrder"))
		return
	}

	SendJSONResponse(c, http.StatusOK, order)
}

// HandleExportOrders выгружает реестр договоров в JSON, CSV или Excel.
// @Summary Экспорт реестра
// @Description Выгружает реестр договоров файлом в выбранном формате.
// @Tags orders
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Формат: json, csv или excel" Enums(json, csv, excel)
// @Success 200 {file} file "Файл выгрузки"
// @Failure 400 {object} ErrorResponse "Неизвестный формат"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/orders/export [get]
func (h *OrdersHandler) HandleExportOrders(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		appErr := apperrors.NewValidationError(err.Error(), err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	fileName := fmt.Sprintf("orders_%s.%s", time.Now().Format("2006-01-02"), format.FileExtension())
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", format.ContentType())

	if err := h.exporter.Export(c.Writer, format, 0); err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось выгрузить реестр", err))
		return
	}
}
