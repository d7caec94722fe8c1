package handlers

import (
	"contractserver/contract"
	"contractserver/database"
	"contractserver/pricing"
)

// ParseRequest запрос разбора брифа. Переопределения оператора
// передаются с каждым запросом: сервер не хранит их между разборами,
// поэтому новый бриф не наследует правок предыдущего.
type ParseRequest struct {
	Brief     string             `json:"brief"`
	Overrides contract.Overrides `json:"overrides"`
}

// ParseResponse результат разбора: запись заказа, финансовые итоги,
// значения для шаблона и имя файла договора.
type ParseResponse struct {
	Record     contract.OrderRecord `json:"record"`
	Financials pricing.Financials   `json:"financials"`
	Values     map[string]string    `json:"values"`
	FileName   string               `json:"file_name"`
}

// GenerateRequest запрос генерации договора. TemplatePath и OutputDir
// переопределяют сохранённые настройки для одного запроса.
type GenerateRequest struct {
	Brief        string             `json:"brief"`
	Overrides    contract.Overrides `json:"overrides"`
	TemplatePath string             `json:"template_path"`
	OutputDir    string             `json:"output_dir"`
}

// GenerateResponse результат генерации договора.
type GenerateResponse struct {
	OrderID        int64  `json:"order_id"`
	ContractNumber string `json:"contract_number"`
	FileName       string `json:"file_name"`
	FilePath       string `json:"file_path"`
}

// OrdersResponse страница реестра договоров.
type OrdersResponse struct {
	Total  int                 `json:"total"`
	Orders []database.OrderRow `json:"orders"`
}

// Settings настройки оператора, переживающие перезапуск сервера.
type Settings struct {
	TemplatePath string `json:"template_path"`
	SaveDir      string `json:"save_dir"`
}

// InstitutionsResponse справочник учреждений и список известных типов.
type InstitutionsResponse struct {
	Types        []string                  `json:"types"`
	Institutions []database.InstitutionRow `json:"institutions"`
}

// ErrorResponse структура ответа об ошибке.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HealthResponse ответ проверки работоспособности.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Orders   int    `json:"orders"`
}
