package pricing

import (
	"strconv"
	"strings"
)

// Financials финансовые итоги договора. Инвариант:
// Total - Deposit == Remainder.
type Financials struct {
	// BasePrice цена альбома без надбавки (идёт в шаблон и имя файла).
	BasePrice int  `json:"base_price"`
	// UnitPrice цена альбома с учётом надбавки за цитаты.
	UnitPrice int  `json:"unit_price"`
	Albums    int  `json:"albums"`
	Total     int  `json:"total"`
	Deposit   int  `json:"deposit"`
	Remainder int  `json:"remainder"`
	Surcharge bool `json:"surcharge"`
}

// ComputeFinancials считает итоговые суммы договора. Надбавка
// прибавляется только при включённом флаге и ненулевой цене.
// Предоплата — операторское переопределение, если оно разбирается
// как целое, иначе 30% от суммы с округлением вниз до тысячи.
func (c *Catalog) ComputeFinancials(unitPrice, albumCount string, surcharge bool, depositOverride string) Financials {
	base := atoiOrZero(unitPrice)
	price := base
	if surcharge && base != 0 {
		price += c.SurchargeAmount
	}

	albums := atoiOrZero(albumCount)
	total := price * albums

	deposit := RoundDownToThousand(total * 3 / 10)
	if override, err := strconv.Atoi(strings.TrimSpace(depositOverride)); err == nil && strings.TrimSpace(depositOverride) != "" {
		deposit = override
	}

	return Financials{
		BasePrice: base,
		UnitPrice: price,
		Albums:    albums,
		Total:     total,
		Deposit:   deposit,
		Remainder: total - deposit,
		Surcharge: surcharge,
	}
}

// RoundDownToThousand округляет сумму вниз до целых тысяч.
func RoundDownToThousand(n int) int {
	return n / 1000 * 1000
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
