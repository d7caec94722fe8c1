package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contractserver/contract"
	"contractserver/pricing"
	apperrors "contractserver/server/errors"
)

// ParseHandler обработчик разбора брифа.
type ParseHandler struct {
	catalog *pricing.Catalog
}

// NewParseHandler создает новый обработчик разбора.
func NewParseHandler(catalog *pricing.Catalog) *ParseHandler {
	return &ParseHandler{catalog: catalog}
}

// HandleParseBrief разбирает бриф и возвращает предпросмотр заказа.
// Разбор никогда не падает: нераспознанные поля приходят пустыми.
// @Summary Разобрать бриф
// @Description Разбирает свободный текст заявки в структурированную запись заказа с расчётом комплекта, часов и сумм. Вызывается формой на каждое изменение текста.
// @Tags parse
// @Accept json
// @Produce json
// @Param request body ParseRequest true "Текст брифа и переопределения оператора"
// @Success 200 {object} ParseResponse "Предпросмотр заказа"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/parse [post]
func (h *ParseHandler) HandleParseBrief(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("неверный формат тела запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	if req.Overrides.Date == "" {
		req.Overrides.Date = contract.RusDate(time.Now())
	}

	order := contract.Build(req.Brief, h.catalog, req.Overrides)

	SendJSONResponse(c, http.StatusOK, ParseResponse{
		Record:     order.Record,
		Financials: order.Financials,
		Values:     order.Values,
		FileName:   order.FileName,
	})
}
