// Package settings keeps the live plugin settings and expression catalog and persists them
// in the background, batching bursts of edits.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/catalog_store.go -pkg mocks -skip-ensure -fmt goimports . CatalogStore

// SettingStore keeps key-value settings
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// CatalogStore keeps the expression catalog. LoadCatalog returns nil if no catalog was ever saved.
type CatalogStore interface {
	LoadCatalog(ctx context.Context) (*expression.Catalog, error)
	SaveCatalog(ctx context.Context, catalog *expression.Catalog) error
}

// Manager holds current settings and catalog. Readers get immutable snapshots,
// writers publish a new snapshot and signal the save worker.
type Manager struct {
	settingStore   SettingStore
	catalogStore   CatalogStore
	defaults       domain.Settings
	defaultCatalog *expression.Catalog
	debounce       time.Duration
	updateCh       chan struct{}

	mu       sync.RWMutex
	settings domain.Settings
	catalog  *expression.Catalog
	version  int64 // bumped on every published change
	saved    int64 // version persisted last
}

// Config holds Manager dependencies and parameters
type Config struct {
	SettingStore   SettingStore
	CatalogStore   CatalogStore
	Defaults       domain.Settings
	DefaultCatalog *expression.Catalog
	Debounce       time.Duration
}

// NewManager makes a manager serving defaults until Load is called
func NewManager(cfg Config) *Manager {
	if cfg.Debounce <= 0 {
		cfg.Debounce = time.Second
	}
	if cfg.DefaultCatalog == nil {
		cfg.DefaultCatalog = expression.DefaultCatalog()
	}
	defaults := cfg.Defaults.Normalize()
	return &Manager{
		settingStore:   cfg.SettingStore,
		catalogStore:   cfg.CatalogStore,
		defaults:       defaults,
		defaultCatalog: cfg.DefaultCatalog.Clone(),
		debounce:       cfg.Debounce,
		updateCh:       make(chan struct{}, 1),
		settings:       defaults,
		catalog:        cfg.DefaultCatalog.Clone(),
	}
}

// Settings returns current settings
func (m *Manager) Settings() domain.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Catalog returns current catalog snapshot. Callers must not modify it.
func (m *Manager) Catalog() *expression.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// UpdateSettings normalizes and publishes new settings
func (m *Manager) UpdateSettings(s domain.Settings) domain.Settings {
	s = s.Normalize()
	m.mu.Lock()
	m.settings = s
	m.version++
	m.mu.Unlock()
	m.signal()
	return s
}

// UpdateCatalog applies fn to a copy of the current catalog and publishes the copy if fn
// succeeds and the result is valid. The current catalog stays untouched on error.
func (m *Manager) UpdateCatalog(fn func(c *expression.Catalog) error) (*expression.Catalog, error) {
	m.mu.Lock()
	updated := m.catalog.Clone()
	if err := fn(updated); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	m.catalog = updated
	m.version++
	m.mu.Unlock()
	m.signal()
	return updated, nil
}

// Load reads stored settings and catalog, missing entries fall back to defaults
func (m *Manager) Load(ctx context.Context) error {
	s := m.defaults
	raw, err := m.settingStore.GetSetting(ctx, domain.SettingPluginSettings)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	if raw != "" {
		stored := m.defaults // fields missing in stored json keep their defaults
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			lgr.Printf("[WARN] stored settings are malformed, using defaults: %v", err)
		} else {
			s = stored.Normalize()
		}
	}

	catalog, err := m.catalogStore.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if catalog == nil {
		lgr.Printf("[INFO] no stored catalog, using %d default categories", len(m.defaultCatalog.Categories))
		catalog = m.defaultCatalog.Clone()
	}

	m.mu.Lock()
	m.settings = s
	m.catalog = catalog
	m.saved = m.version
	m.mu.Unlock()
	lgr.Printf("[DEBUG] settings loaded, enabled=%v, categories=%v", s.Enabled, catalog.Names())
	return nil
}

// Flush persists current settings and catalog right away. Stores retry lock errors themselves.
func (m *Manager) Flush(ctx context.Context) error {
	m.mu.RLock()
	s, catalog, version := m.settings, m.catalog, m.version
	m.mu.RUnlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err = m.settingStore.SetSetting(ctx, domain.SettingPluginSettings, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err = m.catalogStore.SaveCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	m.mu.Lock()
	if version > m.saved {
		m.saved = version
	}
	m.mu.Unlock()
	return nil
}

// Pending reports whether there are changes not persisted yet
func (m *Manager) Pending() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version != m.saved
}

// SaveWorker persists changes once no new edits arrived for the debounce period.
// A failed save is tried again after another debounce period.
// Pending changes are flushed on context cancellation. Runs until ctx is canceled.
func (m *Manager) SaveWorker(ctx context.Context) {
	debounceTimer := time.NewTimer(0)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}

	for {
		select {
		case <-ctx.Done():
			debounceTimer.Stop()
			if m.Pending() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := m.Flush(flushCtx); err != nil {
					lgr.Printf("[WARN] failed to save settings on shutdown: %v", err)
				}
				cancel()
			}
			return
		case <-m.updateCh:
			debounceTimer.Stop()
			debounceTimer.Reset(m.debounce)
		case <-debounceTimer.C:
			if !m.Pending() {
				continue
			}
			lgr.Printf("[DEBUG] saving settings")
			if err := m.Flush(ctx); err != nil {
				lgr.Printf("[WARN] failed to save settings, retry in %v: %v", m.debounce, err)
				if m.Pending() {
					debounceTimer.Reset(m.debounce)
				}
			}
		}
	}
}

// signal wakes the save worker, never blocks
func (m *Manager) signal() {
	select {
	case m.updateCh <- struct{}{}:
	default:
	}
}
