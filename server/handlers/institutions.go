package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractserver/brief"
	"contractserver/database"
	apperrors "contractserver/server/errors"
)

// InstitutionsHandler обработчик справочника учреждений.
type InstitutionsHandler struct {
	db *database.ServiceDB
}

// NewInstitutionsHandler создает новый обработчик справочника.
func NewInstitutionsHandler(db *database.ServiceDB) *InstitutionsHandler {
	return &InstitutionsHandler{db: db}
}

// HandleListInstitutions возвращает известные типы учреждений и
// импортированный справочник для автодополнения на форме.
// @Summary Справочник учреждений
// @Description Возвращает распознаваемые типы учреждений и импортированный справочник.
// @Tags institutions
// @Produce json
// @Success 200 {object} InstitutionsResponse "Справочник учреждений"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/institutions [get]
func (h *InstitutionsHandler) HandleListInstitutions(c *gin.Context) {
	institutions, err := h.db.ListInstitutions()
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось прочитать справочник учреждений", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, InstitutionsResponse{
		Types:        brief.InstitutionTypes,
		Institutions: institutions,
	})
}
