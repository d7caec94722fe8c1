package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"contractserver/database"
	apperrors "contractserver/server/errors"
)

// SettingsHandler обработчик настроек оператора.
type SettingsHandler struct {
	db *database.ServiceDB
}

// NewSettingsHandler создает новый обработчик настроек.
func NewSettingsHandler(db *database.ServiceDB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// HandleGetSettings возвращает сохранённые настройки оператора.
// @Summary Настройки оператора
// @Description Возвращает путь к шаблону договора и каталог сохранения.
// @Tags settings
// @Produce json
// @Success 200 {object} Settings "Настройки"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/settings [get]
func (h *SettingsHandler) HandleGetSettings(c *gin.Context) {
	templatePath, err := h.db.GetSetting(database.SettingTemplatePath)
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось прочитать настройки", err))
		return
	}
	saveDir, err := h.db.GetSetting(database.SettingSaveDir)
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось прочитать настройки", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, Settings{TemplatePath: templatePath, SaveDir: saveDir})
}

// HandleUpdateSettings сохраняет настройки оператора. Путь к шаблону
// проверяется на существование: сломанная настройка хуже отсутствующей.
// @Summary Сохранить настройки
// @Description Сохраняет путь к шаблону договора и каталог сохранения.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body Settings true "Новые настройки"
// @Success 200 {object} Settings "Сохранённые настройки"
// @Failure 400 {object} ErrorResponse "Шаблон недоступен"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/settings [put]
func (h *SettingsHandler) HandleUpdateSettings(c *gin.Context) {
	var req Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("неверный формат тела запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	if req.TemplatePath != "" {
		if _, err := os.Stat(req.TemplatePath); err != nil {
			appErr := apperrors.NewValidationError("шаблон договора недоступен: "+req.TemplatePath, err)
			SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
			return
		}
	}

	if err := h.db.SetSetting(database.SettingTemplatePath, req.TemplatePath); err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось сохранить настройки", err))
		return
	}
	if err := h.db.SetSetting(database.SettingSaveDir, req.SaveDir); err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось сохранить настройки", err))
		return
	}

	SendJSONResponse(c, http.StatusOK, req)
}
