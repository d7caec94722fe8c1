package pricing

import "testing"

// TestDetectCategory проверяет классификацию учреждений по категориям
func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name      string
		instType  string
		classText string
		expected  Category
	}{
		{"детский сад", "Детский сад", "группа 5", CategoryKindergarten},
		{"сад без класса", "Детский сад", "", CategoryKindergarten},
		{"младшие классы", "Школа", "1А", CategoryJunior},
		{"граница младших", "Школа", "4В", CategoryJunior},
		{"старшие классы", "Школа", "5Б", CategorySenior},
		{"граница старших", "Школа", "11А", CategorySenior},
		{"лицей старшие", "Лицей", "9Б", CategorySenior},
		{"гимназия младшие", "Гимназия", "2А", CategoryJunior},
		{"прогимназия", "Прогимназия", "3Б", CategoryJunior},
		{"интернат", "Интернат", "8В", CategorySenior},
		{"параллель вне диапазона", "Школа", "12А", CategoryUnknown},
		{"нулевая параллель", "Школа", "0А", CategoryUnknown},
		{"школа без параллели", "Школа", "выпускной", CategoryUnknown},
		{"неизвестный тип", "Студия", "7Б", CategoryUnknown},
		{"пустой тип", "", "7Б", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCategory(tt.instType, tt.classText)
			if got != tt.expected {
				t.Errorf("DetectCategory(%q, %q): expected %q, got %q",
					tt.instType, tt.classText, tt.expected, got)
			}
		})
	}
}
