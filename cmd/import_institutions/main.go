// Импорт справочника учреждений из HTML-выгрузки. Муниципальные
// списки школ и садов обычно выложены таблицей в windows-1251,
// поэтому файл перед разбором перекодируется в UTF-8.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"contractserver/brief"
	"contractserver/database"
)

var numberRe = regexp.MustCompile(`№?\s*(\d+)`)

func main() {
	var (
		filePath = flag.String("file", "", "Путь к HTML-файлу со списком учреждений")
		dbPath   = flag.String("db", "./contracts.db", "Путь к сервисной базе данных")
		cp1251   = flag.Bool("cp1251", true, "Файл в кодировке windows-1251")
		verbose  = flag.Bool("verbose", false, "Подробный вывод")
	)
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Укажите файл: -file список.html")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Не удалось открыть файл %s: %v", *filePath, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if *cp1251 {
		reader = transform.NewReader(f, charmap.Windows1251.NewDecoder())
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		log.Fatalf("Не удалось разобрать HTML: %v", err)
	}

	db, err := database.NewServiceDB(*dbPath)
	if err != nil {
		log.Fatalf("Не удалось открыть базу данных: %v", err)
	}
	defer db.Close()

	imported := 0
	skipped := 0

	// Каждая строка таблицы или элемент списка с названием учреждения
	doc.Find("tr, li").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(collapseSpaces(s.Text()))
		if name == "" {
			return
		}

		instType, number := classifyInstitution(name)
		if instType == "" {
			skipped++
			return
		}

		if err := db.UpsertInstitution(instType, number, name); err != nil {
			log.Printf("⚠ Не удалось сохранить %q: %v", name, err)
			return
		}
		imported++
		if *verbose {
			log.Printf("  %s №%s <- %q", instType, number, name)
		}
	})

	log.Printf("✓ Импортировано учреждений: %d, пропущено строк: %d", imported, skipped)
}

// classifyInstitution распознает тип учреждения и его номер в
// свободном названии. Выигрывает самое длинное совпадение, чтобы
// прогимназия не засчитывалась как гимназия.
func classifyInstitution(name string) (string, string) {
	lower := strings.ToLower(name)

	matched := ""
	for _, t := range brief.InstitutionTypes {
		lt := strings.ToLower(t)
		if strings.Contains(lower, lt) && len(lt) > len(matched) {
			matched = t
		}
	}
	if matched == "" {
		if strings.Contains(lower, "сош") {
			matched = "Школа"
		} else {
			return "", ""
		}
	}

	number := ""
	if m := numberRe.FindStringSubmatch(name); m != nil {
		number = m[1]
	}
	return matched, number
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
