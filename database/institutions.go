package database

import "fmt"

// InstitutionRow запись справочника учреждений.
type InstitutionRow struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

// UpsertInstitution добавляет учреждение в справочник или обновляет
// его название.
func (db *ServiceDB) UpsertInstitution(instType, number, name string) error {
	_, err := db.conn.Exec(`
		INSERT INTO institutions (type, number, name) VALUES (?, ?, ?)
		ON CONFLICT(type, number) DO UPDATE SET name = excluded.name`,
		instType, number, name)
	if err != nil {
		return fmt.Errorf("failed to upsert institution %s №%s: %w", instType, number, err)
	}
	return nil
}

// ListInstitutions возвращает справочник учреждений, отсортированный
// по типу и номеру.
func (db *ServiceDB) ListInstitutions() ([]InstitutionRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, type, number, name FROM institutions
		ORDER BY type, CAST(number AS INTEGER), number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	defer rows.Close()

	var result []InstitutionRow
	for rows.Next() {
		var row InstitutionRow
		if err := rows.Scan(&row.ID, &row.Type, &row.Number, &row.Name); err != nil {
			return nil, fmt.Errorf("failed to scan institution: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
