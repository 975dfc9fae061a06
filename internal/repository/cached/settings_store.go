package cached

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/open-sunsama/shell/internal/domain"
	"github.com/open-sunsama/shell/internal/repository"
)

// SettingsStore keeps settings in memory and flushes staged writes to the
// repository on Persist. A failed Persist keeps the in-memory values and the
// pending set, so a later Persist retries them.
type SettingsStore struct {
	repo    repository.SystemSettingRepository
	cache   map[string][]byte
	pending map[string]struct{}
	mu      sync.RWMutex
}

func NewSettingsStore(repo repository.SystemSettingRepository) *SettingsStore {
	return &SettingsStore{
		repo:    repo,
		cache:   make(map[string][]byte),
		pending: make(map[string]struct{}),
	}
}

// Load 从数据库加载所有设置到内存（启动时调用）
// Staged but unpersisted values survive a reload.
func (s *SettingsStore) Load() error {
	list, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := make(map[string][]byte, len(list))
	for _, setting := range list {
		fresh[setting.Key] = []byte(setting.Value)
	}
	for key := range s.pending {
		fresh[key] = s.cache[key]
	}
	s.cache = fresh
	return nil
}

// Get returns a copy of the raw JSON value for key.
func (s *SettingsStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// Set stages a value; it is not durable until Persist succeeds.
func (s *SettingsStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = append([]byte(nil), value...)
	s.pending[key] = struct{}{}
}

// Persist writes every staged value in one transaction.
func (s *SettingsStore) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	values := make(map[string]string, len(s.pending))
	for key := range s.pending {
		values[key] = string(s.cache[key])
	}
	if err := s.repo.SetMany(values); err != nil {
		log.Printf("[Settings] Persist of %d keys failed: %v", len(values), err)
		return fmt.Errorf("persist settings: %w", err)
	}
	s.pending = make(map[string]struct{})
	return nil
}

// Delete removes a key from memory and storage immediately.
func (s *SettingsStore) Delete(key string) error {
	if err := s.repo.Delete(key); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
	delete(s.pending, key)
	return nil
}
