package gormdb

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/open-sunsama/shell/internal/domain"
)

type SystemSettingRepository struct {
	db *DB
}

func NewSystemSettingRepository(db *DB) *SystemSettingRepository {
	return &SystemSettingRepository{db: db}
}

func (r *SystemSettingRepository) Get(key string) (string, error) {
	if key == "" {
		return "", domain.ErrNotFound
	}
	var s SystemSetting
	err := r.db.gorm.Where(&SystemSetting{Key: key}).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return s.Value.String(), nil
}

func (r *SystemSettingRepository) Set(key, value string) error {
	return upsertSetting(r.db.gorm, key, value)
}

// SetMany writes every pair or none of them
func (r *SystemSettingRepository) SetMany(values map[string]string) error {
	return r.db.gorm.Transaction(func(tx *gorm.DB) error {
		for k, v := range values {
			if err := upsertSetting(tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SystemSettingRepository) GetAll() ([]*domain.SystemSetting, error) {
	var rows []SystemSetting
	if err := r.db.gorm.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.SystemSetting, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *SystemSettingRepository) Delete(key string) error {
	if key == "" {
		return nil
	}
	return r.db.gorm.Where(&SystemSetting{Key: key}).Delete(&SystemSetting{}).Error
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	row := SystemSetting{
		Key:       key,
		Value:     LongText(value),
		UpdatedAt: toTimestamp(time.Now()),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
