package database

import "fmt"

// NextContractNumber выдает следующий номер договора в формате "N/ГГГГ".
// Счетчик ведется по годам и увеличивается атомарно.
func (db *ServiceDB) NextContractNumber(year int) (string, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin contract sequence tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO contract_sequence (year, last_number) VALUES (?, 1)
		ON CONFLICT(year) DO UPDATE SET last_number = last_number + 1`, year)
	if err != nil {
		return "", fmt.Errorf("failed to advance contract sequence: %w", err)
	}

	var number int
	if err := tx.QueryRow(`SELECT last_number FROM contract_sequence WHERE year = ?`, year).Scan(&number); err != nil {
		return "", fmt.Errorf("failed to read contract sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit contract sequence: %w", err)
	}
	return fmt.Sprintf("%d/%d", number, year), nil
}
