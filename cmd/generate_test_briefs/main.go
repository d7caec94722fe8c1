// Генератор тестовых брифов. Создает файл с заявками в тех форматах,
// в которых их реально присылают менеджерам: аккуратные семь строк,
// нумерованные списки, заявка одной строкой через запятую и заявки
// с подписями полей.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"contractserver/brief"
)

func main() {
	var (
		count   = flag.Int("count", 20, "Количество брифов")
		outPath = flag.String("out", "test_briefs.txt", "Файл для записи")
		seed    = flag.Int64("seed", 0, "Seed генератора (0 = фиксированный)")
	)
	flag.Parse()

	gofakeit.Seed(*seed)

	var sb strings.Builder
	for i := 0; i < *count; i++ {
		sb.WriteString(fmt.Sprintf("=== Бриф %d ===\n", i+1))
		sb.WriteString(generateBrief())
		sb.WriteString("\n\n")
	}

	if err := os.WriteFile(*outPath, []byte(sb.String()), 0644); err != nil {
		log.Fatalf("Не удалось записать файл %s: %v", *outPath, err)
	}
	log.Printf("✓ Сгенерировано брифов: %d, файл: %s", *count, *outPath)
}

// generateBrief собирает один бриф в случайном формате.
func generateBrief() string {
	fields := generateFields()

	switch gofakeit.Number(0, 3) {
	case 0:
		// Аккуратный бриф, одно поле на строку
		return strings.Join(fields, "\n")
	case 1:
		// Нумерованный список
		lines := make([]string, len(fields))
		for i, f := range fields {
			lines[i] = fmt.Sprintf("%d. %s", i+1, f)
		}
		return strings.Join(lines, "\n")
	case 2:
		// Вся заявка одной строкой
		return strings.Join(fields, ", ")
	default:
		// Бриф с подписями полей, как из анкеты
		labels := []string{
			"Учреждение", "Класс/группа", "Кол-во детей",
			"Кол-во альбомов", "Цена", "Телефон", "ФИО",
		}
		lines := make([]string, 0, len(fields)*2)
		for i, f := range fields {
			lines = append(lines, labels[i]+":")
			lines = append(lines, f)
		}
		return strings.Join(lines, "\n")
	}
}

// generateFields возвращает семь полей брифа в каноническом порядке.
func generateFields() []string {
	instType := brief.InstitutionTypes[gofakeit.Number(0, len(brief.InstitutionTypes)-1)]
	instNumber := gofakeit.Number(1, 200)

	institution := fmt.Sprintf("%s №%d", instType, instNumber)
	if gofakeit.Bool() {
		institution = fmt.Sprintf("%s %d", instType, instNumber)
	}

	group := generateGroup(instType)
	children := gofakeit.Number(10, 32)
	albums := children - gofakeit.Number(0, 5)
	price := []int{1600, 1700, 1900, 2000, 2100, 2300, 2600, 2700, 2800, 2900}[gofakeit.Number(0, 9)]

	contact := gofakeit.LastName() + " " + gofakeit.FirstName()
	phone := generatePhone()

	return []string{
		institution,
		group,
		fmt.Sprintf("%d", children),
		fmt.Sprintf("%d", albums),
		fmt.Sprintf("%d", price),
		phone,
		contact,
	}
}

func generateGroup(instType string) string {
	if strings.Contains(strings.ToLower(instType), "сад") {
		titles := []string{"Солнышко", "Ромашка", "Звёздочка", "Теремок", "Капелька"}
		return fmt.Sprintf("группа %d «%s»", gofakeit.Number(1, 12), titles[gofakeit.Number(0, 4)])
	}
	letters := []string{"А", "Б", "В", "Г"}
	return fmt.Sprintf("%d%s", gofakeit.Number(1, 11), letters[gofakeit.Number(0, 3)])
}

func generatePhone() string {
	digits := fmt.Sprintf("9%02d%07d", gofakeit.Number(0, 99), gofakeit.Number(0, 9999999))
	switch gofakeit.Number(0, 2) {
	case 0:
		return "+7" + digits
	case 1:
		return "8" + digits
	default:
		return fmt.Sprintf("8 %s %s-%s-%s", digits[:3], digits[3:6], digits[6:8], digits[8:])
	}
}
