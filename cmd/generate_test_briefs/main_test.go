package main

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"contractserver/brief"
)

// TestGenerateFields_FieldOrder проверяет порядок полей сгенерированного
// брифа: телефон идёт шестым, ФИО — седьмым. Разбор такого брифа должен
// класть имя в ContactName, а не номер телефона.
func TestGenerateFields_FieldOrder(t *testing.T) {
	gofakeit.Seed(1)

	for i := 0; i < 25; i++ {
		fields := generateFields()
		if len(fields) != brief.ExpectedFieldCount {
			t.Fatalf("Ожидалось полей %d, получено %d", brief.ExpectedFieldCount, len(fields))
		}

		parsed := brief.Parse(strings.Join(fields, "\n"), brief.ParseOptions{})

		if parsed.ContactName != fields[6] {
			t.Errorf("ContactName: ожидалось %q, получено %q", fields[6], parsed.ContactName)
		}
		if strings.ContainsAny(parsed.ContactName, "0123456789") {
			t.Errorf("В ContactName попали цифры: %q", parsed.ContactName)
		}

		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(fields[5])
		want := brief.NormalizePhone(cleaned)
		if len(parsed.Phones) == 0 {
			t.Fatalf("Телефон %q не извлечён из брифа", fields[5])
		}
		if parsed.Phones[0] != want {
			t.Errorf("Телефон: ожидалось %q, получено %q", want, parsed.Phones[0])
		}
	}
}
