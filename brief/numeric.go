package brief

import (
	"regexp"
	"strings"
)

// Фиксированные позиции числовых полей в сегментированном брифе.
const (
	childrenLineIdx = 2
	albumsLineIdx   = 3
	priceLineIdx    = 4
	contactLineIdx  = 6
)

var (
	priceRunRe     = regexp.MustCompile(`\d{3,5}`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	contactLabelRe = regexp.MustCompile(`(?i)^\s*фио[\s:.\-]*`)
)

// ChildrenCount извлекает количество детей с третьей строки брифа.
func ChildrenCount(lines []string) string {
	return FirstDigits(LineAt(lines, childrenLineIdx))
}

// AlbumCount извлекает количество альбомов с четвёртой строки брифа.
func AlbumCount(lines []string) string {
	return FirstDigits(LineAt(lines, albumsLineIdx))
}

// UnitPrice извлекает цену альбома: первая последовательность из 3–5
// цифр на пятой строке после удаления пробелов ("2 650" → "2650").
func UnitPrice(lines []string) string {
	line := whitespaceRe.ReplaceAllString(LineAt(lines, priceLineIdx), "")
	return priceRunRe.FindString(line)
}

// PackageHint ищет на строке цены название комплекта из прайса.
// Используется, когда цена цифрами не указана: по названию комплекта
// позже подбирается цена по умолчанию.
func PackageHint(lines []string, packageNames []string) string {
	lower := strings.ToLower(LineAt(lines, priceLineIdx))
	for _, name := range packageNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

// ContactName извлекает ФИО контактного лица с седьмой строки,
// отбрасывая подпись "ФИО:" если оператор её оставил.
func ContactName(lines []string) string {
	return strings.TrimSpace(contactLabelRe.ReplaceAllString(LineAt(lines, contactLineIdx), ""))
}
