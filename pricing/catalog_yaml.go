package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog читает прайс из YAML-файла. Пустой путь возвращает
// прайс по умолчанию. Файл должен описывать полный прайс: частичные
// переопределения не поддерживаются, чтобы таблицы оставались
// согласованными.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл прайса %s: %w", path, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("не удалось разобрать файл прайса %s: %w", path, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("некорректный прайс %s: %w", path, err)
	}
	return &catalog, nil
}

// Validate проверяет согласованность таблиц прайса: непустые названия,
// корректные диапазоны цен и отсутствие пересечений между комплектами.
func (c *Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("прайс не содержит ни одного комплекта")
	}

	for i, tier := range c.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("комплект #%d без названия", i+1)
		}
		if tier.MinPrice <= 0 || tier.MaxPrice < tier.MinPrice {
			return fmt.Errorf("комплект %q: некорректный диапазон цен [%d, %d]", tier.Name, tier.MinPrice, tier.MaxPrice)
		}
		if tier.Hours.OneMax <= 0 || tier.Hours.TwoMax < tier.Hours.OneMax {
			return fmt.Errorf("комплект %q: некорректные пороги часов", tier.Name)
		}
		for _, other := range c.Tiers[:i] {
			if tier.MinPrice <= other.MaxPrice && other.MinPrice <= tier.MaxPrice {
				return fmt.Errorf("комплекты %q и %q пересекаются по ценам", other.Name, tier.Name)
			}
		}
	}

	if c.SurchargeAmount < 0 {
		return fmt.Errorf("отрицательная надбавка за цитаты: %d", c.SurchargeAmount)
	}
	return nil
}
