package domain

import (
	"fmt"
	"time"
)

// BackupVersion current backup format version
const BackupVersion = "1.0"

// BackupFile is an exported copy of the settings store
type BackupFile struct {
	Version    string                `json:"version"`
	ExportedAt time.Time             `json:"exportedAt"`
	AppVersion string                `json:"appVersion"`
	Settings   []BackupSystemSetting `json:"settings"`
}

// BackupSystemSetting represents a system setting for backup
type BackupSystemSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConflictStrategy decides what import does with a key that already exists
type ConflictStrategy string

const (
	ConflictSkip      ConflictStrategy = "skip"
	ConflictOverwrite ConflictStrategy = "overwrite"
	ConflictError     ConflictStrategy = "error"
)

// ParseConflictStrategy accepts "" as skip
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(s) {
	case "", ConflictSkip:
		return ConflictSkip, nil
	case ConflictOverwrite, ConflictError:
		return ConflictStrategy(s), nil
	}
	return "", fmt.Errorf("unknown conflict strategy %q (want skip, overwrite or error)", s)
}

// ImportOptions defines options for import operation
type ImportOptions struct {
	Conflict ConflictStrategy `json:"conflictStrategy"`
	DryRun   bool             `json:"dryRun"`
}

// ImportResult 导入结果
type ImportResult struct {
	Imported  int      `json:"imported"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts []string `json:"conflicts,omitempty"`
}
