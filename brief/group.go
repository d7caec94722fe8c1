package brief

import (
	"regexp"
	"strings"
	"unicode"
)

// GroupInfo результат разбора второй строки брифа (класс или группа).
type GroupInfo struct {
	// Label отображаемое значение: "Группа 5 «Солнышко»" для детского
	// сада, компактный токен класса ("7Б") для школ.
	Label string `json:"label"`
	// FileToken токен для имени файла договора: номер группы для
	// детского сада, класс в верхнем регистре для школ.
	FileToken string `json:"file_token"`
	// Number первая последовательность цифр строки (номер группы).
	Number string `json:"number"`
	// Title очищенное название группы (без кавычек, цифр и слов-ярлыков).
	Title string `json:"title"`
	// Grade числовая параллель класса (для школ).
	Grade string `json:"grade"`
}

var (
	quotedTitleRe = regexp.MustCompile(`["«]([^"«»]+)["»]`)
	classTokenRe  = regexp.MustCompile(`\d+\pL+`)
	alnumRunRe    = regexp.MustCompile(`[\pL\d]+`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// groupKeywords слова, удаляемые из названий групп и токенов классов.
var groupKeywords = map[string]bool{
	"группа": true,
	"группы": true,
	"номер":  true,
	"класс":  true,
	"кл":     true,
	"гр":     true,
	"no":     true,
	"№":      true,
}

// ExtractGroup разбирает вторую строку брифа. Для детских садов
// собирается подпись "Группа N «Название»", для школ — компактный
// токен класса из цифр параллели и буквы литеры.
func ExtractGroup(lines []string, institutionType string) GroupInfo {
	line := LineAt(lines, 1)
	number := FirstDigits(line)

	rawTitle := line
	if m := quotedTitleRe.FindStringSubmatch(line); m != nil {
		rawTitle = m[1]
	}
	title := cleanGroupTitle(rawTitle)

	if strings.Contains(strings.ToLower(institutionType), "сад") {
		label := "Группа"
		if number != "" {
			label += " " + number
		}
		if title != "" {
			label += " «" + title + "»"
		}
		if number == "" && title == "" {
			label = ""
		}
		return GroupInfo{
			Label:     label,
			FileToken: number,
			Number:    number,
			Title:     title,
		}
	}

	token := classToken(line)
	return GroupInfo{
		Label:     token,
		FileToken: strings.ToUpper(token),
		Number:    number,
		Title:     title,
		Grade:     FirstDigits(token),
	}
}

// classToken собирает компактный токен класса: последовательности
// "цифры + буквы" ("7Б", "10а"); если таких нет — все буквенно-цифровые
// фрагменты строки за вычетом слов-ярлыков.
func classToken(line string) string {
	runs := classTokenRe.FindAllString(line, -1)
	if len(runs) == 0 {
		for _, run := range alnumRunRe.FindAllString(line, -1) {
			if groupKeywords[strings.ToLower(run)] {
				continue
			}
			runs = append(runs, run)
		}
	}
	return strings.Join(runs, "")
}

// cleanGroupTitle очищает название группы: удаляет слова-ярлыки,
// цифры, кавычки и скобки, схлопывает пробелы и делает первую букву
// заглавной.
func cleanGroupTitle(title string) string {
	t := strings.TrimSpace(title)

	words := strings.Fields(t)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if groupKeywords[strings.ToLower(strings.Trim(w, `."'«»()№:;,`))] {
			continue
		}
		kept = append(kept, w)
	}
	t = strings.Join(kept, " ")

	t = digitRunRe.ReplaceAllString(t, "")
	t = strings.NewReplacer(`"`, "", "«", "", "»", "", "'", "", "(", "", ")", "", "№", "").Replace(t)
	t = multiSpaceRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(t)

	runes := []rune(t)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
