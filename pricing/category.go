package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// schoolFamilyWords признаки учреждений школьного типа.
var schoolFamilyWords = []string{"школа", "интернат", "прогимназия", "гимназия", "лицей"}

var digitRunRe = regexp.MustCompile(`\d+`)

// DetectCategory чистая функция классификации: тип учреждения и текст
// класса/группы → категория прайса. Сад определяется безусловно по
// типу; для школьной семьи категория зависит от параллели: 1–4 —
// младшие, 5–11 — старшие, иначе не определена.
func DetectCategory(institutionType, classText string) Category {
	inst := strings.ToLower(institutionType)
	if strings.Contains(inst, "сад") {
		return CategoryKindergarten
	}

	for _, w := range schoolFamilyWords {
		if !strings.Contains(inst, w) {
			continue
		}
		digits := digitRunRe.FindString(classText)
		if digits == "" {
			return CategoryUnknown
		}
		grade, err := strconv.Atoi(digits)
		if err != nil {
			return CategoryUnknown
		}
		switch {
		case grade >= 1 && grade <= 4:
			return CategoryJunior
		case grade >= 5 && grade <= 11:
			return CategorySenior
		}
		return CategoryUnknown
	}
	return CategoryUnknown
}
