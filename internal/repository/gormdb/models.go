package gormdb

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/open-sunsama/shell/internal/domain"
)

// LongText stores JSON setting values without a length limit on any dialect
type LongText string

func (LongText) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "LONGTEXT"
	}
	return "TEXT"
}

func (lt LongText) Value() (driver.Value, error) {
	return string(lt), nil
}

func (lt *LongText) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*lt = ""
	case string:
		*lt = LongText(v)
	case []byte:
		*lt = LongText(v)
	default:
		return fmt.Errorf("unsupported LongText scan type %T", value)
	}
	return nil
}

func (lt LongText) String() string {
	return string(lt)
}

// SystemSetting is one row of the settings table
type SystemSetting struct {
	Key       string   `gorm:"primaryKey;size:191"`
	Value     LongText `gorm:"not null"`
	UpdatedAt int64    `gorm:"autoUpdateTime:milli"`
}

func (SystemSetting) TableName() string { return "system_settings" }

func (s *SystemSetting) toDomain() *domain.SystemSetting {
	return &domain.SystemSetting{Key: s.Key, Value: s.Value.String()}
}

// AllModels lists every model handled by auto-migration
func AllModels() []any {
	return []any{
		&SystemSetting{},
	}
}
