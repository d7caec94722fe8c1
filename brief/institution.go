package brief

import (
	"regexp"
	"strings"
)

// Institution результат определения учреждения по брифу.
// Пустые поля означают "не определено" — значения никогда не угадываются.
type Institution struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// DefaultInstitutionType тип, подставляемый когда первая строка брифа
// состоит из одних цифр, а оператор не указал тип вручную.
const DefaultInstitutionType = "Школа"

// InstitutionTypes справочник типов учреждений, распознаваемых дословно.
var InstitutionTypes = []string{
	"Школа",
	"Детский сад",
	"Лицей",
	"Гимназия",
	"Прогимназия",
	"Интернат",
}

// Маркеры-сокращения. \b в RE2 работает только с ASCII, поэтому
// границы кириллических слов заданы явно через \pL.
var (
	kindergartenMarkerRe = regexp.MustCompile(`(?i)(?:^|[^\pL])(?:дс|сад)(?:[^\pL]|$)`)
	schoolMarkerRe       = regexp.MustCompile(`(?i)(?:^|[^\pL])сош(?:[^\pL]|$)`)
	pureDigitsRe         = regexp.MustCompile(`^\d+$`)
)

// ResolveInstitution определяет тип и номер учреждения по первым трём
// строкам брифа. При отсутствии совпадений используется операторское
// переопределение override; если и его нет — оба поля остаются пустыми.
func ResolveInstitution(lines []string, override string) Institution {
	limit := len(lines)
	if limit > 3 {
		limit = 3
	}

	for i := 0; i < limit; i++ {
		line := lines[i]
		if kindergartenMarkerRe.MatchString(line) {
			return Institution{Type: "Детский сад", Number: FirstDigits(line)}
		}
		if schoolMarkerRe.MatchString(line) {
			return Institution{Type: "Школа", Number: FirstDigits(line)}
		}
		// Более длинное название проверяется первым, иначе
		// "Прогимназия" ошибочно распознаётся как "Гимназия".
		lower := strings.ToLower(line)
		best := ""
		for _, t := range InstitutionTypes {
			if strings.Contains(lower, strings.ToLower(t)) && len(t) > len(best) {
				best = t
			}
		}
		if best != "" {
			return Institution{Type: best, Number: FirstDigits(line)}
		}
	}

	first := strings.TrimSpace(LineAt(lines, 0))
	if pureDigitsRe.MatchString(first) {
		t := override
		if t == "" {
			t = DefaultInstitutionType
		}
		return Institution{Type: t, Number: first}
	}
	if override != "" {
		return Institution{Type: override, Number: FirstDigits(first)}
	}
	return Institution{}
}
