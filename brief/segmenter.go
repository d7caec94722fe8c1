package brief

import (
	"regexp"
	"strings"
)

// ExpectedFieldCount число полей стандартного брифа:
// учреждение, класс/группа, кол-во детей, кол-во альбомов, цена, телефон, ФИО.
const ExpectedFieldCount = 7

// Окно приёмки для стратегий очистки: результат принимается,
// только если число строк остаётся в этих пределах.
const (
	minAcceptedLines = 5
	maxAcceptedLines = 8
)

var (
	numberingRe     = regexp.MustCompile(`^\s*\d+[.)]\s*`)
	bareNumberingRe = regexp.MustCompile(`^\d+[.)]?$`)
	anyDigitRe      = regexp.MustCompile(`\d`)
	digitRunRe      = regexp.MustCompile(`\d+`)
)

// noiseWords фрагменты слов-ярлыков, по которым строка распознаётся
// как подпись поля, а не значение ("3. Всего детей", "Телефон:" и т.п.).
var noiseWords = []string{
	"учреждение",
	"групп",
	"класс",
	"кол-во",
	"количество",
	"всего",
	"альбом",
	"цена",
	"стоимост",
	"комплект",
	"телефон",
	"фио",
	"имя",
}

// inlineSplitters стратегии повторного разбиения однострочного брифа,
// от самой широкой к самой узкой. Последняя применяется безусловно.
var inlineSplitters = []*regexp.Regexp{
	regexp.MustCompile(`[;,]`),
	regexp.MustCompile(`\s{2,}`),
	regexp.MustCompile(`\s+`),
}

// SegmentLines нормализует сырой текст брифа в упорядоченный список
// строк-кандидатов на поля. Нумерация ("1. ", "2) ") удаляется, пустые
// строки отбрасываются. Однострочный ввод повторно разбивается по
// разделителям, зашумлённый многострочный прогоняется через стратегии
// очистки от строк-подписей.
func SegmentLines(text string) []string {
	lines := splitClean(strings.Split(text, "\n"))

	if len(lines) == 1 {
		lines = resplitInline(lines[0])
	}

	if len(lines) > ExpectedFieldCount {
		lines = cleanupNoise(lines)
	}

	return lines
}

// LineAt возвращает строку по индексу или пустую строку,
// если индекс за пределами списка.
func LineAt(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}

// FirstDigits возвращает первую непрерывную последовательность цифр в строке.
func FirstDigits(s string) string {
	return digitRunRe.FindString(s)
}

// splitClean обрезает пробелы, удаляет нумерацию и отбрасывает пустые строки.
func splitClean(parts []string) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(numberingRe.ReplaceAllString(strings.TrimSpace(p), ""))
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// resplitInline разбивает однострочный бриф. Стратегии пробуются по
// порядку, принимается первая, давшая не меньше ExpectedFieldCount
// частей; последняя (по одиночным пробелам) применяется безусловно.
func resplitInline(line string) []string {
	last := len(inlineSplitters) - 1
	for _, splitter := range inlineSplitters[:last] {
		parts := splitClean(splitter.Split(line, -1))
		if len(parts) >= ExpectedFieldCount {
			return parts
		}
	}
	return splitClean(inlineSplitters[last].Split(line, -1))
}

// cleanupNoise убирает строки-подписи из избыточного списка. Сначала
// пробуется фильтр, сохраняющий значение после подписи, затем простой
// безусловный фильтр; результат принимается только в окне 5–8 строк,
// иначе список остаётся без изменений.
func cleanupNoise(lines []string) []string {
	strategies := []func([]string) []string{
		filterNoiseKeepValues,
		filterNoise,
	}

	for _, strategy := range strategies {
		cleaned := strategy(lines)
		if len(cleaned) >= minAcceptedLines && len(cleaned) <= maxAcceptedLines {
			return cleaned
		}
	}
	return lines
}

// filterNoiseKeepValues удаляет строки-подписи, но сохраняет строку,
// идущую сразу за подписью: оператор мог ввести подпись и значение
// на соседних строках.
func filterNoiseKeepValues(lines []string) []string {
	result := make([]string, 0, len(lines))
	for i, line := range lines {
		if isNoiseLine(line) && !(i > 0 && isNoiseLine(lines[i-1])) {
			continue
		}
		result = append(result, line)
	}
	return result
}

// filterNoise безусловно удаляет все строки-подписи.
func filterNoise(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if isNoiseLine(line) {
			continue
		}
		result = append(result, line)
	}
	return result
}

// isNoiseLine определяет строку-подпись: голый номер пункта либо
// текст со словом-ярлыком без единой цифры.
func isNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if bareNumberingRe.MatchString(trimmed) {
		return true
	}
	if anyDigitRe.MatchString(trimmed) {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, w := range noiseWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
