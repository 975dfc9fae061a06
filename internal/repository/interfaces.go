package repository

import "github.com/open-sunsama/shell/internal/domain"

// SystemSettingRepository is the durable key-value table behind the settings store
type SystemSettingRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
	GetAll() ([]*domain.SystemSetting, error)
	Delete(key string) error
	// SetMany writes all pairs in one transaction
	SetMany(values map[string]string) error
}

// SettingsStore is a key-value map of JSON values. Set only stages a value;
// Persist makes staged values durable.
type SettingsStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Persist() error
}
