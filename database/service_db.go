// Package database — сервисная база данных приложения на SQLite:
// настройки оператора, реестр сгенерированных договоров, счётчик
// номеров договоров и справочник учреждений.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServiceDB обертка для работы с сервисной базой данных.
type ServiceDB struct {
	conn *sql.DB
}

// NewServiceDB создает новое подключение к сервисной базе данных.
func NewServiceDB(dbPath string) (*ServiceDB, error) {
	config := DBConfig{}

	// Для in-memory SQLite требуется ровно одно соединение, иначе
	// каждое новое соединение получает пустую БД без таблиц.
	if isInMemoryDB(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewServiceDBWithConfig(dbPath, config)
}

// isInMemoryDB определяет, что путь относится к in-memory SQLite.
func isInMemoryDB(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	if strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory") {
		return true
	}
	return false
}

// NewServiceDBWithConfig создает новое подключение к сервисной базе
// данных с конфигурацией пула соединений.
func NewServiceDBWithConfig(dbPath string, config DBConfig) (*ServiceDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open service database: %w", err)
	}

	// SQLite плохо переносит большое число одновременных соединений,
	// по умолчанию ограничиваемся небольшим пулом.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping service database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL улучшает конкурентность чтения; некритично, если не включился.
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Printf("[ServiceDB] Warning: Failed to enable WAL mode: %v", err)
	}

	db := &ServiceDB{conn: conn}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize service schema: %w", err)
	}

	return db, nil
}

// Close закрывает подключение к сервисной базе данных.
func (db *ServiceDB) Close() error {
	return db.conn.Close()
}

// Ping проверяет подключение к базе данных.
func (db *ServiceDB) Ping() error {
	return db.conn.Ping()
}

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
