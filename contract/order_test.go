package contract

import (
	"reflect"
	"testing"

	"contractserver/pricing"
)

// TestBuild_SchoolOrder проверяет полный конвейер на типовом брифе школы
func TestBuild_SchoolOrder(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "Школа №5\n7Б\n25\n10\n2650\n89161234567\n"

	order := Build(text, catalog, Overrides{})

	r := order.Record
	if r.InstitutionType != "Школа" || r.InstitutionNumber != "5" {
		t.Errorf("Institution: expected Школа №5, got %s №%s", r.InstitutionType, r.InstitutionNumber)
	}
	if r.ClassOrGroup != "7Б" {
		t.Errorf("ClassOrGroup: expected '7Б', got %q", r.ClassOrGroup)
	}
	if r.Category != "СТ" {
		t.Errorf("Category: expected 'СТ', got %q", r.Category)
	}
	if r.Package != "Классик" {
		t.Errorf("Package: expected 'Классик', got %q", r.Package)
	}
	if r.Pages != "10" {
		t.Errorf("Pages: expected '10', got %q", r.Pages)
	}
	if r.Hours != "1" {
		t.Errorf("Hours: expected '1', got %q", r.Hours)
	}
	if !reflect.DeepEqual(r.Phones, []string{"+79161234567"}) {
		t.Errorf("Phones: expected [+79161234567], got %v", r.Phones)
	}

	if order.Financials.Total != 26500 {
		t.Errorf("Total: expected 26500, got %d", order.Financials.Total)
	}
	if order.Financials.Deposit != 7000 {
		t.Errorf("Deposit: expected 7000, got %d", order.Financials.Deposit)
	}

	if order.FileName != "5 7Б 10 2650.DOCX" {
		t.Errorf("FileName: expected '5 7Б 10 2650.DOCX', got %q", order.FileName)
	}
}

// TestBuild_KindergartenOrder проверяет конвейер на брифе детского сада
func TestBuild_KindergartenOrder(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "дс 41\nгруппа 5 «Солнышко»\n18\n18\n2800\n89037654321\nПетрова Анна"

	order := Build(text, catalog, Overrides{})

	r := order.Record
	if r.Category != "ДС" {
		t.Errorf("Category: expected 'ДС', got %q", r.Category)
	}
	if r.Package != "Премиум" {
		t.Errorf("Package: expected 'Премиум', got %q", r.Package)
	}
	if r.Pages != "12" {
		t.Errorf("Pages: expected '12' for kindergarten, got %q", r.Pages)
	}
	if r.ClassOrGroup != "Группа 5 «Солнышко»" {
		t.Errorf("ClassOrGroup: expected 'Группа 5 «Солнышко»', got %q", r.ClassOrGroup)
	}
	// В имя файла идёт номер группы, а не подпись
	if order.FileName != "41 5 18 2800.DOCX" {
		t.Errorf("FileName: expected '41 5 18 2800.DOCX', got %q", order.FileName)
	}
}

// TestBuild_DefaultPriceFromHint проверяет подстановку цены по
// умолчанию, когда вместо цены указано название комплекта
func TestBuild_DefaultPriceFromHint(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "Школа 9\n1А\n28\n28\nклассик\n89161234567\nИванова"

	order := Build(text, catalog, Overrides{})

	r := order.Record
	if r.Category != "МЛ" {
		t.Errorf("Category: expected 'МЛ', got %q", r.Category)
	}
	if r.UnitPrice != "2600" {
		t.Errorf("UnitPrice: expected default '2600', got %q", r.UnitPrice)
	}
	if r.Package != "Классик" {
		t.Errorf("Package: expected 'Классик', got %q", r.Package)
	}
	if order.Financials.Total != 2600*28 {
		t.Errorf("Total: expected %d, got %d", 2600*28, order.Financials.Total)
	}
}

// TestBuild_HintWithoutDefaultPrice проверяет, что для старших классов
// название комплекта без цены не даёт цену
func TestBuild_HintWithoutDefaultPrice(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "Школа 9\n9А\n28\n28\nклассик\n89161234567\nИванова"

	order := Build(text, catalog, Overrides{})

	if order.Record.UnitPrice != "" {
		t.Errorf("UnitPrice: expected empty, got %q", order.Record.UnitPrice)
	}
	if order.Record.Package != "" {
		t.Errorf("Package: expected empty, got %q", order.Record.Package)
	}
	if order.Record.Hours != "" {
		t.Errorf("Hours: expected empty without package, got %q", order.Record.Hours)
	}
}

// TestBuild_RunOnBriefDefaultPrice проверяет заявку одной строкой без
// цены цифрами: после повторного разбиения цена по умолчанию
// подставляется для младших классов и только для них
func TestBuild_RunOnBriefDefaultPrice(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	order := Build("Школа 9, 1А, 28, 28, классик, 89161234567, Иванова", catalog, Overrides{})
	r := order.Record
	if r.Category != "МЛ" {
		t.Errorf("Category: expected 'МЛ', got %q", r.Category)
	}
	if r.UnitPrice != "2600" {
		t.Errorf("UnitPrice: expected default '2600', got %q", r.UnitPrice)
	}
	if r.Package != "Классик" {
		t.Errorf("Package: expected 'Классик', got %q", r.Package)
	}
	if r.ContactName != "Иванова" {
		t.Errorf("ContactName: expected 'Иванова', got %q", r.ContactName)
	}

	// Тот же бриф для старшего класса: цены по умолчанию нет
	senior := Build("Школа 9, 9А, 28, 28, классик, 89161234567, Иванова", catalog, Overrides{})
	if senior.Record.UnitPrice != "" {
		t.Errorf("UnitPrice: expected empty for СТ, got %q", senior.Record.UnitPrice)
	}
	if senior.Record.Package != "" {
		t.Errorf("Package: expected empty for СТ, got %q", senior.Record.Package)
	}
}

// TestBuild_Overrides проверяет приоритет операторских переопределений
func TestBuild_Overrides(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "Школа №5\n7Б\n25\n10\n2650\n89161234567\n"

	ov := Overrides{
		Pages:       "16",
		Hours:       "3",
		Deposit:     "12000",
		ContactName: "Сидорова Ольга",
		Surcharge:   true,
	}
	order := Build(text, catalog, ov)

	r := order.Record
	if r.Pages != "16" {
		t.Errorf("Pages: expected override '16', got %q", r.Pages)
	}
	if r.Hours != "3" {
		t.Errorf("Hours: expected override '3', got %q", r.Hours)
	}
	if r.ContactName != "Сидорова Ольга" {
		t.Errorf("ContactName: expected override, got %q", r.ContactName)
	}
	if order.Financials.Deposit != 12000 {
		t.Errorf("Deposit: expected override 12000, got %d", order.Financials.Deposit)
	}
	if order.Financials.UnitPrice != 2850 {
		t.Errorf("UnitPrice with surcharge: expected 2850, got %d", order.Financials.UnitPrice)
	}
	// Имя файла строится по цене без надбавки
	if order.FileName != "5 7Б 10 2650.DOCX" {
		t.Errorf("FileName: expected base price in name, got %q", order.FileName)
	}
}

// TestBuild_InstitutionOverride проверяет операторский тип учреждения
// для брифа из одних цифр
func TestBuild_InstitutionOverride(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "41\n3Б\n20\n20\n2100\n89161234567\nИванова"

	order := Build(text, catalog, Overrides{InstitutionType: "Лицей"})

	r := order.Record
	if r.InstitutionType != "Лицей" || r.InstitutionNumber != "41" {
		t.Errorf("Institution: expected Лицей №41, got %s №%s", r.InstitutionType, r.InstitutionNumber)
	}
	if r.Category != "МЛ" {
		t.Errorf("Category: expected 'МЛ', got %q", r.Category)
	}
}

// TestBuild_Deterministic проверяет детерминированность конвейера
func TestBuild_Deterministic(t *testing.T) {
	catalog := pricing.DefaultCatalog()
	text := "Школа №5\n7Б\n25\n10\n2650\n89161234567\n"

	first := Build(text, catalog, Overrides{})
	second := Build(text, catalog, Overrides{})

	if !reflect.DeepEqual(first, second) {
		t.Error("Build not deterministic for identical input")
	}
}

// TestBuild_EmptyBrief проверяет, что пустой бриф даёт пустой заказ
// без паники
func TestBuild_EmptyBrief(t *testing.T) {
	catalog := pricing.DefaultCatalog()

	order := Build("", catalog, Overrides{})

	if order.Record.InstitutionType != "" || order.Record.Package != "" {
		t.Errorf("Expected empty record, got %+v", order.Record)
	}
	if order.Financials.Total != 0 {
		t.Errorf("Expected zero total, got %d", order.Financials.Total)
	}
}
