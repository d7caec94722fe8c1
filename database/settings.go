package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// Ключи настроек оператора, переживающих перезапуск сервера.
const (
	SettingTemplatePath = "template_path"
	SettingSaveDir      = "save_dir"
)

// GetSetting возвращает значение настройки или пустую строку,
// если настройка еще не сохранялась.
func (db *ServiceDB) GetSetting(key string) (string, error) {
	var value string
	err := db.conn.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting сохраняет значение настройки.
func (db *ServiceDB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(`
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}
