package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"contractserver/contract"
	"contractserver/database"
	"contractserver/docxgen"
	"contractserver/internal/config"
	"contractserver/pricing"
	apperrors "contractserver/server/errors"
)

// GenerateHandler обработчик генерации договора.
type GenerateHandler struct {
	catalog *pricing.Catalog
	db      *database.ServiceDB
	cfg     *config.Config
}

// NewGenerateHandler создает новый обработчик генерации.
func NewGenerateHandler(catalog *pricing.Catalog, db *database.ServiceDB, cfg *config.Config) *GenerateHandler {
	return &GenerateHandler{catalog: catalog, db: db, cfg: cfg}
}

// HandleGenerateContract разбирает бриф, подставляет значения в шаблон
// и сохраняет договор в реестре. В отличие от разбора, ошибки шаблона
// и файловой системы отдаются оператору как есть.
// @Summary Сгенерировать договор
// @Description Разбирает бриф, присваивает номер договора, заполняет шаблон .docx и записывает заказ в реестр.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Текст брифа, переопределения и пути"
// @Success 200 {object} GenerateResponse "Сведения о созданном договоре"
// @Failure 400 {object} ErrorResponse "Неверный запрос или шаблон не задан"
// @Failure 500 {object} ErrorResponse "Ошибка заполнения шаблона или записи файла"
// @Router /api/generate [post]
func (h *GenerateHandler) HandleGenerateContract(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("неверный формат тела запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	templatePath, err := h.resolveTemplatePath(req.TemplatePath)
	if err != nil {
		HandleError(c, err)
		return
	}

	outputDir, err := h.resolveOutputDir(req.OutputDir)
	if err != nil {
		HandleError(c, err)
		return
	}

	now := time.Now()
	if req.Overrides.Date == "" {
		req.Overrides.Date = contract.RusDate(now)
	}
	if req.Overrides.ContractNumber == "" {
		number, err := h.db.NextContractNumber(now.Year())
		if err != nil {
			HandleError(c, apperrors.NewInternalError("не удалось получить номер договора", err).WithContext("HandleGenerateContract"))
			return
		}
		req.Overrides.ContractNumber = number
	}

	order := contract.Build(req.Brief, h.catalog, req.Overrides)
	outPath := filepath.Join(outputDir, order.FileName)

	if err := docxgen.Generate(templatePath, outPath, order.Values); err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось сгенерировать договор", err).WithContext("HandleGenerateContract"))
		return
	}

	orderID, err := h.db.SaveOrder(database.OrderRow{
		ContractNumber: req.Overrides.ContractNumber,
		Institution:    order.Values[contract.KeyInstitution],
		ClassOrGroup:   order.Record.ClassOrGroup,
		Category:       order.Record.Category,
		Package:        order.Record.Package,
		ChildrenCount:  order.Record.ChildrenCount,
		AlbumCount:     order.Record.AlbumCount,
		UnitPrice:      order.Record.UnitPrice,
		Total:          order.Financials.Total,
		Deposit:        order.Financials.Deposit,
		Remainder:      order.Financials.Remainder,
		ContactName:    order.Record.ContactName,
		Phone:          order.Values[contract.KeyPhone],
		FileName:       order.FileName,
		Brief:          req.Brief,
	})
	if err != nil {
		HandleError(c, apperrors.NewInternalError("не удалось сохранить договор в реестре", err).WithContext("HandleGenerateContract"))
		return
	}

	// Запоминаем последний каталог сохранения для следующих генераций.
	if req.OutputDir != "" {
		if err := h.db.SetSetting(database.SettingSaveDir, req.OutputDir); err != nil {
			HandleError(c, apperrors.NewInternalError("не удалось сохранить настройку", err))
			return
		}
	}

	SendJSONResponse(c, http.StatusOK, GenerateResponse{
		OrderID:        orderID,
		ContractNumber: req.Overrides.ContractNumber,
		FileName:       order.FileName,
		FilePath:       outPath,
	})
}

// resolveTemplatePath выбирает шаблон: из запроса, из настроек, из
// конфигурации. Отсутствие шаблона — ошибка, которая показывается
// оператору, а не глотается.
func (h *GenerateHandler) resolveTemplatePath(requested string) (string, error) {
	path := requested
	if path == "" {
		saved, err := h.db.GetSetting(database.SettingTemplatePath)
		if err != nil {
			return "", apperrors.NewInternalError("не удалось прочитать настройки", err)
		}
		path = saved
	}
	if path == "" {
		path = h.cfg.TemplatePath
	}
	if path == "" {
		return "", apperrors.NewValidationError("шаблон договора не выбран", nil)
	}
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.NewValidationError("шаблон договора недоступен: "+path, err)
	}
	return path, nil
}

// resolveOutputDir выбирает каталог сохранения и при необходимости
// создает его.
func (h *GenerateHandler) resolveOutputDir(requested string) (string, error) {
	dir := requested
	if dir == "" {
		saved, err := h.db.GetSetting(database.SettingSaveDir)
		if err != nil {
			return "", apperrors.NewInternalError("не удалось прочитать настройки", err)
		}
		dir = saved
	}
	if dir == "" {
		dir = h.cfg.SaveDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.NewInternalError("не удалось создать каталог сохранения", err)
	}
	return dir, nil
}
