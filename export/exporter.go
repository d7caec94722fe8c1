// Package export выгружает реестр договоров в JSON, CSV и Excel.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"contractserver/database"
)

// Format формат экспорта реестра.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// ParseFormat разбирает формат экспорта из строки запроса.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatExcel:
		return Format(s), nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("неизвестный формат экспорта: %q", s)
}

// FileExtension расширение файла выгрузки.
func (f Format) FileExtension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// ContentType MIME-тип выгрузки для HTTP-ответа.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Exporter экспортер реестра договоров.
type Exporter struct {
	db *database.ServiceDB
}

// NewExporter создает новый экспортер.
func NewExporter(db *database.ServiceDB) *Exporter {
	return &Exporter{db: db}
}

// Export выгружает реестр договоров в указанном формате.
func (e *Exporter) Export(w io.Writer, format Format, limit int) error {
	orders, err := e.db.ListOrders(limit)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	switch format {
	case FormatCSV:
		return writeCSV(w, orders)
	case FormatExcel:
		return writeExcel(w, orders)
	default:
		return writeJSON(w, orders)
	}
}

func writeJSON(w io.Writer, orders []database.OrderRow) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	result := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"total":       len(orders),
		"orders":      orders,
	}
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

var exportHeaders = []string{
	"ID", "Номер договора", "Учреждение", "Класс/Группа", "Категория", "Комплект",
	"Детей", "Альбомов", "Цена", "Сумма", "Предоплата", "Остаток",
	"ФИО", "Телефон", "Файл", "Создан",
}

func orderRecord(o database.OrderRow) []string {
	return []string{
		strconv.FormatInt(o.ID, 10),
		o.ContractNumber,
		o.Institution,
		o.ClassOrGroup,
		o.Category,
		o.Package,
		o.ChildrenCount,
		o.AlbumCount,
		o.UnitPrice,
		strconv.Itoa(o.Total),
		strconv.Itoa(o.Deposit),
		strconv.Itoa(o.Remainder),
		o.ContactName,
		o.Phone,
		o.FileName,
		o.CreatedAt,
	}
}

func writeCSV(w io.Writer, orders []database.OrderRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for _, order := range orders {
		if err := writer.Write(orderRecord(order)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeExcel(w io.Writer, orders []database.OrderRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Договоры"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, order := range orders {
		for colIdx, value := range orderRecord(order) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 16)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
