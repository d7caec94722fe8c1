package pricing

import (
	"strconv"
	"strings"
)

// EstimateHours оценивает часы съёмки по количеству альбомов и
// комплекту. Нечисловое количество или неизвестный комплект —
// пустая строка ("не определено").
func (c *Catalog) EstimateHours(albumCount, packageName string) string {
	n, err := strconv.Atoi(strings.TrimSpace(albumCount))
	if err != nil {
		return ""
	}

	for _, tier := range c.Tiers {
		if tier.Name != packageName {
			continue
		}
		rule := tier.Hours
		switch {
		case rule.OneInclusive && n <= rule.OneMax:
			return "1"
		case !rule.OneInclusive && n < rule.OneMax:
			return "1"
		case n <= rule.TwoMax:
			return "2"
		default:
			return "3"
		}
	}
	return ""
}
