package contract

import (
	"fmt"
	"strings"
)

// FileName строит имя файла договора:
// "{номер учреждения} {класс/группа} {альбомы} {цена}.docx" в верхнем
// регистре. Случайные двойные пробелы и точки, возникающие из-за
// пустых полей, схлопываются.
func FileName(institutionNumber, classToken, albumCount string, basePrice int) string {
	name := fmt.Sprintf("%s %s %s %d.docx", institutionNumber, classToken, albumCount, basePrice)
	name = strings.ReplaceAll(name, "  ", " ")
	name = strings.ReplaceAll(name, `""`, "")
	name = strings.ReplaceAll(name, " .", ".")
	name = strings.ReplaceAll(name, "..", ".")
	return strings.ToUpper(strings.TrimSpace(name))
}
