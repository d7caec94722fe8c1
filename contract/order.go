// Package contract собирает полный заказ: прогоняет бриф через
// разборщик, применяет правила прайса, операторские переопределения
// и готовит значения для подстановки в шаблон договора.
package contract

import (
	"contractserver/brief"
	"contractserver/pricing"
)

// Overrides операторские переопределения с формы. Переопределения
// приходят с каждым запросом и имеют приоритет над выведенными
// значениями; сервер между разборами их не хранит, поэтому новый бриф
// не наследует устаревших правок.
type Overrides struct {
	// InstitutionType тип учреждения, если бриф не позволяет его
	// определить ("Авто" на форме присылается пустой строкой).
	InstitutionType string `json:"institution_type"`
	Pages           string `json:"pages"`
	Hours           string `json:"hours"`
	Deposit         string `json:"deposit"`
	// Surcharge флаг надбавки за цитаты.
	Surcharge      bool   `json:"surcharge"`
	ContactName    string `json:"contact_name"`
	VKLink         string `json:"vk_link"`
	Date           string `json:"date"`
	ContractNumber string `json:"contract_number"`
	ShootSchedule  string `json:"shoot_schedule"`
}

// OrderRecord структурированная запись заказа. Все "числовые" поля —
// строки: пустая строка означает "не определено", ошибки разбора
// никогда не поднимаются выше.
type OrderRecord struct {
	InstitutionType   string   `json:"institution_type"`
	InstitutionNumber string   `json:"institution_number"`
	ClassOrGroup      string   `json:"class_or_group"`
	ChildrenCount     string   `json:"children_count"`
	AlbumCount        string   `json:"album_count"`
	UnitPrice         string   `json:"unit_price"`
	Category          string   `json:"category"`
	Package           string   `json:"package"`
	Pages             string   `json:"pages"`
	Hours             string   `json:"hours"`
	Phones            []string `json:"phones"`
	ContactName       string   `json:"contact_name"`
	FileName          string   `json:"derived_file_name"`
}

// Order полный результат конвейера: запись заказа, финансовые итоги
// и карта значений для шаблона договора.
type Order struct {
	Record     OrderRecord        `json:"record"`
	Financials pricing.Financials `json:"financials"`
	Values     map[string]string  `json:"values"`
	FileName   string             `json:"file_name"`
}

// Build выполняет полный конвейер: сегментация → учреждение →
// класс/группа → числовые поля → телефоны → категория → комплект →
// часы → финансы. Детерминирован; дата не подставляется автоматически,
// её передаёт вызывающая сторона через Overrides.
func Build(briefText string, catalog *pricing.Catalog, ov Overrides) Order {
	parsed := brief.Parse(briefText, brief.ParseOptions{
		InstitutionOverride: ov.InstitutionType,
		PackageNames:        catalog.PackageNames(),
	})

	category := pricing.DetectCategory(parsed.Institution.Type, parsed.Group.Label)

	unitPrice := parsed.UnitPrice
	if unitPrice == "" && parsed.PackageHint != "" {
		unitPrice = catalog.DefaultPrice(parsed.PackageHint, category)
	}

	packageName, pages := catalog.MatchPackage(unitPrice, category)

	hours := ""
	if packageName != "" {
		hours = catalog.EstimateHours(parsed.AlbumCount, packageName)
	}

	if ov.Pages != "" {
		pages = ov.Pages
	}
	if ov.Hours != "" {
		hours = ov.Hours
	}

	contact := parsed.ContactName
	if ov.ContactName != "" {
		contact = ov.ContactName
	}

	fin := catalog.ComputeFinancials(unitPrice, parsed.AlbumCount, ov.Surcharge, ov.Deposit)

	fileToken := parsed.Group.FileToken
	if category == pricing.CategoryKindergarten {
		fileToken = parsed.Group.Number
	}
	fileName := FileName(parsed.Institution.Number, fileToken, parsed.AlbumCount, fin.BasePrice)

	record := OrderRecord{
		InstitutionType:   parsed.Institution.Type,
		InstitutionNumber: parsed.Institution.Number,
		ClassOrGroup:      parsed.Group.Label,
		ChildrenCount:     parsed.ChildrenCount,
		AlbumCount:        parsed.AlbumCount,
		UnitPrice:         unitPrice,
		Category:          string(category),
		Package:           packageName,
		Pages:             pages,
		Hours:             hours,
		Phones:            parsed.Phones,
		ContactName:       contact,
		FileName:          fileName,
	}

	return Order{
		Record:     record,
		Financials: fin,
		Values:     TemplateValues(record, fin, ov),
		FileName:   fileName,
	}
}
