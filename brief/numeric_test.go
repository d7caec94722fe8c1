package brief

import "testing"

var numericLines = []string{
	"Школа №5", "7Б", "25 детей", "10 альбомов", "2 650 руб", "Иванова", "ФИО: Петрова Анна",
}

// TestChildrenCount проверяет извлечение количества детей
func TestChildrenCount(t *testing.T) {
	if got := ChildrenCount(numericLines); got != "25" {
		t.Errorf("Expected '25', got %q", got)
	}
	if got := ChildrenCount([]string{"Школа"}); got != "" {
		t.Errorf("Expected empty string for missing line, got %q", got)
	}
}

// TestAlbumCount проверяет извлечение количества альбомов
func TestAlbumCount(t *testing.T) {
	if got := AlbumCount(numericLines); got != "10" {
		t.Errorf("Expected '10', got %q", got)
	}
}

// TestUnitPrice проверяет извлечение цены альбома
func TestUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"цена цифрами", "2650", "2650"},
		{"цена с пробелом в тысячах", "2 650 руб", "2650"},
		{"цена с текстом", "цена 1900", "1900"},
		{"цены нет", "классик", ""},
		{"двузначное число не цена", "25", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := []string{"", "", "", "", tt.line}
			if got := UnitPrice(lines); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestPackageHint проверяет поиск названия комплекта на строке цены
func TestPackageHint(t *testing.T) {
	names := []string{"Планшет", "Минимум", "Классик", "Премиум"}

	lines := []string{"", "", "", "", "берём классик"}
	if got := PackageHint(lines, names); got != "Классик" {
		t.Errorf("Expected 'Классик', got %q", got)
	}

	lines = []string{"", "", "", "", "2650"}
	if got := PackageHint(lines, names); got != "" {
		t.Errorf("Expected empty hint, got %q", got)
	}
}

// TestContactName проверяет извлечение ФИО с отбрасыванием подписи
func TestContactName(t *testing.T) {
	if got := ContactName(numericLines); got != "Петрова Анна" {
		t.Errorf("Expected 'Петрова Анна', got %q", got)
	}

	lines := []string{"", "", "", "", "", "", "Иванова Мария"}
	if got := ContactName(lines); got != "Иванова Мария" {
		t.Errorf("Expected 'Иванова Мария', got %q", got)
	}
}
