package brief

import (
	"reflect"
	"testing"
)

// TestNormalizePhone проверяет приведение номера к каноничному виду
func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"89161234567", "+79161234567"},
		{"+79161234567", "+79161234567"},
		{"79161234567", "+79161234567"},
		{"9161234567", "+79161234567"},
		{"84951234567", "+74951234567"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.input); got != tt.expected {
			t.Errorf("NormalizePhone(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

// TestNormalizePhone_Idempotent проверяет, что повторная нормализация
// ничего не меняет
func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"89161234567", "+79161234567", "9161234567"}

	for _, input := range inputs {
		once := NormalizePhone(input)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone(%q) not idempotent: %q != %q", input, once, twice)
		}
	}
}

// TestExtractPhones проверяет поиск телефонов по всем строкам брифа
func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "телефон с восьмёркой",
			lines:    []string{"Школа 5", "89161234567"},
			expected: []string{"+79161234567"},
		},
		{
			name:     "телефон с пробелами и дефисами",
			lines:    []string{"+7 916 123-45-67"},
			expected: []string{"+79161234567"},
		},
		{
			name:     "дубликат в разных форматах схлопывается",
			lines:    []string{"89161234567", "+7 916 123 45 67"},
			expected: []string{"+79161234567"},
		},
		{
			name:     "два разных номера в порядке появления",
			lines:    []string{"89161234567", "89037654321"},
			expected: []string{"+79161234567", "+79037654321"},
		},
		{
			name:     "телефон не на своей строке",
			lines:    []string{"Иванова 89161234567", "7Б"},
			expected: []string{"+79161234567"},
		},
		{
			name:     "коротких номеров нет",
			lines:    []string{"2650", "25"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhones(tt.lines)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
