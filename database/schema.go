package database

import (
	"database/sql"
	"fmt"
)

// serviceTables миграции сервисной БД. Все выражения идемпотентны,
// выполняются при каждом старте.
var serviceTables = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		contract_number TEXT NOT NULL DEFAULT '',
		institution TEXT NOT NULL DEFAULT '',
		class_or_group TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		package TEXT NOT NULL DEFAULT '',
		children_count TEXT NOT NULL DEFAULT '',
		album_count TEXT NOT NULL DEFAULT '',
		unit_price TEXT NOT NULL DEFAULT '',
		total INTEGER NOT NULL DEFAULT 0,
		deposit INTEGER NOT NULL DEFAULT 0,
		remainder INTEGER NOT NULL DEFAULT 0,
		contact_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		file_name TEXT NOT NULL DEFAULT '',
		brief TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`,
	`CREATE TABLE IF NOT EXISTS contract_sequence (
		year INTEGER PRIMARY KEY,
		last_number INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS institutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		number TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		UNIQUE(type, number)
	)`,
}

// initSchema создает таблицы сервисной БД, если их еще нет.
func initSchema(conn *sql.DB) error {
	for _, stmt := range serviceTables {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
