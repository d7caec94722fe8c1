// Package brief разбирает свободный текст заявки ("бриф"), надиктованный
// оператором продаж, в структурированные поля заказа. Разбор терпим к
// зашумлённому вводу: нумерованные списки, однострочный ввод, смешанные
// разделители, пропущенные поля. Экстракторы никогда не возвращают
// ошибок — нераспознанное поле остаётся пустой строкой.
package brief

// ParseOptions опции разбора брифа.
type ParseOptions struct {
	// InstitutionOverride тип учреждения, выбранный оператором вручную,
	// на случай когда бриф не позволяет определить тип.
	InstitutionOverride string
	// PackageNames названия комплектов из прайса для поиска подсказки
	// на строке цены.
	PackageNames []string
}

// Parsed результат разбора брифа до применения правил прайса.
type Parsed struct {
	Lines         []string    `json:"lines"`
	Institution   Institution `json:"institution"`
	Group         GroupInfo   `json:"group"`
	ChildrenCount string      `json:"children_count"`
	AlbumCount    string      `json:"album_count"`
	UnitPrice     string      `json:"unit_price"`
	PackageHint   string      `json:"package_hint"`
	Phones        []string    `json:"phones"`
	ContactName   string      `json:"contact_name"`
}

// Parse прогоняет бриф через цепочку экстракторов: сегментация →
// учреждение → класс/группа → числовые поля → телефоны. Детерминирован:
// одинаковый текст всегда даёт одинаковый результат.
func Parse(text string, opts ParseOptions) Parsed {
	lines := SegmentLines(text)
	institution := ResolveInstitution(lines, opts.InstitutionOverride)

	return Parsed{
		Lines:         lines,
		Institution:   institution,
		Group:         ExtractGroup(lines, institution.Type),
		ChildrenCount: ChildrenCount(lines),
		AlbumCount:    AlbumCount(lines),
		UnitPrice:     UnitPrice(lines),
		PackageHint:   PackageHint(lines, opts.PackageNames),
		Phones:        ExtractPhones(lines),
		ContactName:   ContactName(lines),
	}
}
