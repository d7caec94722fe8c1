package brief

import (
	"regexp"
	"strings"
)

// phoneRe телефоноподобная последовательность из 10–11 цифр,
// опционально с кодом страны или межгородом.
var phoneRe = regexp.MustCompile(`(?:\+7|8|7)?\d{10,11}`)

// ExtractPhones сканирует все строки брифа (не только строку
// "Телефон") и возвращает нормализованные номера без дубликатов,
// в порядке первого появления. Повторная нормализация результата
// ничего не меняет.
func ExtractPhones(lines []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, line := range lines {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(line)
		for _, match := range phoneRe.FindAllString(cleaned, -1) {
			phone := NormalizePhone(match)
			if phone == "" || seen[phone] {
				continue
			}
			seen[phone] = true
			result = append(result, phone)
		}
	}
	return result
}

// NormalizePhone приводит номер к каноничному виду: ведущая "8"
// заменяется на код "7", голый мобильный номер из 10 цифр получает
// код "7", знак "+" добавляется только к 11-значным номерам.
func NormalizePhone(raw string) string {
	p := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	switch {
	case strings.HasPrefix(p, "8"):
		p = "7" + p[1:]
	case strings.HasPrefix(p, "9") && len(p) == 10:
		p = "7" + p
	}
	if len(p) == 11 {
		return "+" + p
	}
	return p
}
