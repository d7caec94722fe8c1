// Package pricing содержит бизнес-правила прайса: классификацию
// учреждений по категориям, подбор комплекта по цене, расчёт часов
// съёмки и финансовых итогов договора. Все справочные таблицы —
// неизменяемая конфигурация (Catalog), а не глобальное состояние.
package pricing

import "strconv"

// Category категория учреждения, от которой зависят правила прайса.
type Category string

const (
	// CategoryKindergarten детский сад.
	CategoryKindergarten Category = "ДС"
	// CategoryJunior младшие классы (1–4).
	CategoryJunior Category = "МЛ"
	// CategorySenior старшие классы (5–11).
	CategorySenior Category = "СТ"
	// CategoryUnknown категория не определена.
	CategoryUnknown Category = ""
)

// HourRule пороги количества альбомов для расчёта часов съёмки.
// До первого порога — 1 час, до второго — 2, дальше — 3.
type HourRule struct {
	OneMax       int  `yaml:"one_max"`
	OneInclusive bool `yaml:"one_inclusive"`
	TwoMax       int  `yaml:"two_max"`
}

// PackageTier комплект (тариф) прайса: диапазон цен включительно и
// количество страниц альбома. Pages == 0 означает, что страницы
// зависят от категории (PagesDS / PagesML).
type PackageTier struct {
	Name     string   `yaml:"name"`
	MinPrice int      `yaml:"min_price"`
	MaxPrice int      `yaml:"max_price"`
	Pages    int      `yaml:"pages"`
	PagesDS  int      `yaml:"pages_ds"`
	PagesML  int      `yaml:"pages_ml"`
	Hours    HourRule `yaml:"hours"`
}

// Catalog неизменяемые справочные таблицы прайса. Создаётся один раз
// при старте (DefaultCatalog или LoadCatalog) и передаётся по ссылке.
type Catalog struct {
	Tiers []PackageTier `yaml:"tiers"`
	// DefaultPricesML цены по умолчанию при брифе без цифр цены.
	// Определены только для младших классов; остальные категории
	// остаются без цены.
	DefaultPricesML map[string]int `yaml:"default_prices_ml"`
	// SurchargeAmount надбавка к цене альбома за цитаты.
	SurchargeAmount int `yaml:"surcharge_amount"`
}

// DefaultCatalog возвращает прайс, зашитый в приложение.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Tiers: []PackageTier{
			{Name: "Планшет", MinPrice: 1600, MaxPrice: 1900, Pages: 2, PagesDS: 2, PagesML: 2,
				Hours: HourRule{OneMax: 20, OneInclusive: true, TwoMax: 39}},
			{Name: "Минимум", MinPrice: 2000, MaxPrice: 2300, Pages: 4, PagesDS: 4, PagesML: 4,
				Hours: HourRule{OneMax: 18, TwoMax: 28}},
			{Name: "Классик", MinPrice: 2600, MaxPrice: 2700, Pages: 10, PagesDS: 10, PagesML: 10,
				Hours: HourRule{OneMax: 18, TwoMax: 25}},
			{Name: "Премиум", MinPrice: 2800, MaxPrice: 2900, Pages: 0, PagesDS: 12, PagesML: 20,
				Hours: HourRule{OneMax: 18, TwoMax: 25}},
		},
		DefaultPricesML: map[string]int{
			"Планшет": 1700,
			"Минимум": 2100,
			"Классик": 2600,
			"Премиум": 2800,
		},
		SurchargeAmount: 200,
	}
}

// PackageNames возвращает названия комплектов в порядке таблицы.
func (c *Catalog) PackageNames() []string {
	names := make([]string, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		names = append(names, t.Name)
	}
	return names
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
