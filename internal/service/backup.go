package service

import (
	"fmt"
	"time"

	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/repository"
	"github.com/open-sunsama/shell/internal/version"
)

// BackupService exports and imports the settings store
type BackupService struct {
	settingRepo repository.SystemSettingRepository
}

// NewBackupService creates a new backup service
func NewBackupService(settingRepo repository.SystemSettingRepository) *BackupService {
	return &BackupService{settingRepo: settingRepo}
}

// Export returns every stored setting
func (s *BackupService) Export() (*domain.BackupFile, error) {
	settings, err := s.settingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	backup := &domain.BackupFile{
		Version:    domain.BackupVersion,
		ExportedAt: time.Now().UTC(),
		AppVersion: version.Version,
		Settings:   make([]domain.BackupSystemSetting, 0, len(settings)),
	}
	for _, st := range settings {
		backup.Settings = append(backup.Settings, domain.BackupSystemSetting{Key: st.Key, Value: st.Value})
	}
	return backup, nil
}

// Import writes the backup's settings in one batch. With ConflictError any
// existing key aborts the import before anything is written.
func (s *BackupService) Import(backup *domain.BackupFile, opts domain.ImportOptions) (*domain.ImportResult, error) {
	if backup.Version != domain.BackupVersion {
		return nil, fmt.Errorf("unsupported backup version: %s (expected %s)", backup.Version, domain.BackupVersion)
	}

	existing, err := s.settingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load existing settings: %w", err)
	}
	current := make(map[string]string, len(existing))
	for _, st := range existing {
		current[st.Key] = st.Value
	}

	result := &domain.ImportResult{}
	writes := make(map[string]string)
	for _, bs := range backup.Settings {
		if bs.Key == "" {
			continue
		}
		old, exists := current[bs.Key]
		switch {
		case !exists:
			writes[bs.Key] = bs.Value
			result.Imported++
		case old == bs.Value:
			result.Skipped++
		case opts.Conflict == domain.ConflictOverwrite:
			writes[bs.Key] = bs.Value
			result.Updated++
		case opts.Conflict == domain.ConflictError:
			result.Conflicts = append(result.Conflicts, bs.Key)
		default:
			result.Skipped++
		}
	}

	if len(result.Conflicts) > 0 {
		return result, fmt.Errorf("import aborted: %d existing keys differ: %v", len(result.Conflicts), result.Conflicts)
	}
	if opts.DryRun || len(writes) == 0 {
		return result, nil
	}
	if err := s.settingRepo.SetMany(writes); err != nil {
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}
	return result, nil
}
