package pricing

import (
	"strconv"
	"strings"
)

// MatchPackage подбирает комплект по цене альбома. Диапазоны цен
// включительны и не пересекаются; промежутки между ними намеренно
// не дают совпадения. Нечисловая цена — отказ без совпадения.
// Для комплекта со страницами, зависящими от категории, неизвестная
// категория даёт пустое количество страниц.
func (c *Catalog) MatchPackage(price string, category Category) (name, pages string) {
	p, err := strconv.Atoi(strings.TrimSpace(price))
	if err != nil {
		return "", ""
	}

	for _, tier := range c.Tiers {
		if p < tier.MinPrice || p > tier.MaxPrice {
			continue
		}
		if tier.Pages != 0 {
			return tier.Name, itoa(tier.Pages)
		}
		switch category {
		case CategoryKindergarten:
			return tier.Name, itoa(tier.PagesDS)
		case CategoryJunior, CategorySenior:
			// Старшие классы переиспользуют страницы младших —
			// отдельной строки для них в действующем прайсе нет.
			return tier.Name, itoa(tier.PagesML)
		default:
			return tier.Name, ""
		}
	}
	return "", ""
}

// DefaultPrice возвращает цену по умолчанию для комплекта, названного
// в брифе без цифр. Определена только для младших классов; для прочих
// категорий цена остаётся пустой.
func (c *Catalog) DefaultPrice(packageName string, category Category) string {
	if packageName == "" || category != CategoryJunior {
		return ""
	}
	lower := strings.ToLower(packageName)
	for name, price := range c.DefaultPricesML {
		if strings.Contains(lower, strings.ToLower(name)) {
			return itoa(price)
		}
	}
	return ""
}
