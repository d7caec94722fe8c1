package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// OrderRow запись реестра договоров.
type OrderRow struct {
	ID             int64  `json:"id"`
	ContractNumber string `json:"contract_number"`
	Institution    string `json:"institution"`
	ClassOrGroup   string `json:"class_or_group"`
	Category       string `json:"category"`
	Package        string `json:"package"`
	ChildrenCount  string `json:"children_count"`
	AlbumCount     string `json:"album_count"`
	UnitPrice      string `json:"unit_price"`
	Total          int    `json:"total"`
	Deposit        int    `json:"deposit"`
	Remainder      int    `json:"remainder"`
	ContactName    string `json:"contact_name"`
	Phone          string `json:"phone"`
	FileName       string `json:"file_name"`
	Brief          string `json:"brief"`
	CreatedAt      string `json:"created_at"`
}

const orderColumns = `id, contract_number, institution, class_or_group, category, package,
	children_count, album_count, unit_price, total, deposit, remainder,
	contact_name, phone, file_name, brief, created_at`

// ErrOrderNotFound возвращается при запросе несуществующего договора.
var ErrOrderNotFound = errors.New("order not found")

// SaveOrder сохраняет договор в реестре и возвращает его идентификатор.
func (db *ServiceDB) SaveOrder(row OrderRow) (int64, error) {
	result, err := db.conn.Exec(`
		INSERT INTO orders (contract_number, institution, class_or_group, category, package,
			children_count, album_count, unit_price, total, deposit, remainder,
			contact_name, phone, file_name, brief)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ContractNumber, row.Institution, row.ClassOrGroup, row.Category, row.Package,
		row.ChildrenCount, row.AlbumCount, row.UnitPrice, row.Total, row.Deposit, row.Remainder,
		row.ContactName, row.Phone, row.FileName, row.Brief)
	if err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}
	return result.LastInsertId()
}

// GetOrder возвращает договор по идентификатору.
func (db *ServiceDB) GetOrder(id int64) (*OrderRow, error) {
	row := db.conn.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return order, nil
}

// ListOrders возвращает реестр договоров, свежие первыми.
func (db *ServiceDB) ListOrders(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := db.conn.Query(`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderRow
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// CountOrders возвращает размер реестра договоров.
func (db *ServiceDB) CountOrders() (int, error) {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(scanner rowScanner) (*OrderRow, error) {
	var row OrderRow
	var createdAt sql.NullString
	err := scanner.Scan(
		&row.ID, &row.ContractNumber, &row.Institution, &row.ClassOrGroup, &row.Category,
		&row.Package, &row.ChildrenCount, &row.AlbumCount, &row.UnitPrice,
		&row.Total, &row.Deposit, &row.Remainder,
		&row.ContactName, &row.Phone, &row.FileName, &row.Brief, &createdAt)
	if err != nil {
		return nil, err
	}
	row.CreatedAt = nullString(createdAt)
	return &row, nil
}
