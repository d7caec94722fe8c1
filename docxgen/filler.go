// Package docxgen подставляет значения в шаблон договора .docx.
// Шаблон обрабатывается на уровне zip-архива: токены {ключ}
// заменяются прямо в XML текстовых частей документа, поэтому в
// шаблоне токен обязан быть цельным фрагментом текста, не разорванным
// форматированием.
package docxgen

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// textParts части docx, в которых выполняется подстановка.
var textParts = map[string]bool{
	"word/document.xml": true,
	"word/header1.xml":  true,
	"word/header2.xml":  true,
	"word/header3.xml":  true,
	"word/footer1.xml":  true,
	"word/footer2.xml":  true,
	"word/footer3.xml":  true,
}

// xmlEscaper экранирует спецсимволы XML в подставляемых значениях.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Generate копирует шаблон в outPath, заменяя токены {ключ} на
// значения из values. В отличие от разборщика брифа, ошибки здесь
// не глотаются: отсутствующий шаблон или недоступный путь сохранения
// возвращаются вызывающей стороне как есть.
func Generate(templatePath, outPath string, values map[string]string) error {
	reader, err := zip.OpenReader(templatePath)
	if err != nil {
		return fmt.Errorf("не удалось открыть шаблон %s: %w", templatePath, err)
	}
	defer reader.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("не удалось создать файл договора %s: %w", outPath, err)
	}
	defer out.Close()

	writer := zip.NewWriter(out)
	for _, file := range reader.File {
		if err := copyEntry(writer, file, values); err != nil {
			writer.Close()
			return fmt.Errorf("не удалось обработать часть %s: %w", file.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("не удалось дописать архив договора: %w", err)
	}
	return out.Close()
}

// copyEntry переносит часть архива в выходной документ, выполняя
// подстановку в текстовых частях.
func copyEntry(writer *zip.Writer, file *zip.File, values map[string]string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return err
	}

	if textParts[file.Name] {
		data = []byte(ReplaceTokens(string(data), values))
	}

	header := file.FileHeader
	w, err := writer.CreateHeader(&header)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReplaceTokens заменяет токены {ключ} на экранированные значения.
func ReplaceTokens(xml string, values map[string]string) string {
	for key, value := range values {
		token := "{" + key + "}"
		if !strings.Contains(xml, token) {
			continue
		}
		xml = strings.ReplaceAll(xml, token, xmlEscaper.Replace(strings.TrimSpace(value)))
	}
	return xml
}
