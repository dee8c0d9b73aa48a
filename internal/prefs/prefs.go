// Package prefs keeps the viewer's preferences in the platform save-data
// directory.
package prefs

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	object   = "viewer"
	property = "prefs"
)

// Prefs are the persisted viewer settings.
type Prefs struct {
	Animate bool `yaml:"animate"`
	// Set records that Animate came from storage rather than a default.
	Set bool `yaml:"-"`
}

// Store is the subset of *gdata.Manager used for persistence.
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Manager loads and saves Prefs. A Manager with a nil Store keeps
// preferences in memory only.
type Manager struct {
	store  Store
	logger *slog.Logger
	prefs  Prefs
}

// Open opens the save-data store for appName. When the store cannot be
// opened the Manager falls back to memory only and the error is logged.
func Open(appName string, logger *slog.Logger) *Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("prefs: save data unavailable, using defaults", slog.Any("error", err))
		return New(nil, logger)
	}
	return New(m, logger)
}

// New returns a Manager over store and loads any saved preferences.
func New(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{store: store, logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("prefs: ignoring saved preferences", slog.Any("error", err))
	}
	return m
}

// Load replaces the in-memory preferences with the stored ones. Missing
// data leaves the zero Prefs.
func (m *Manager) Load() error {
	m.prefs = Prefs{}
	if m.store == nil || !m.store.ObjectPropExists(object, property) {
		return nil
	}
	data, err := m.store.LoadObjectProp(object, property)
	if err != nil {
		return fmt.Errorf("prefs: load: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("prefs: decode: %w", err)
	}
	p.Set = true
	m.prefs = p
	return nil
}

// Save writes the current preferences. It is a no-op without a Store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(object, property, data); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	m.logger.Debug("prefs: saved", slog.Bool("animate", m.prefs.Animate))
	return nil
}

// Get returns the current preferences.
func (m *Manager) Get() Prefs { return m.prefs }

// SetAnimate updates the animation preference and saves it. A failed save
// is logged; the in-memory value still changes.
func (m *Manager) SetAnimate(on bool) {
	m.prefs.Animate = on
	m.prefs.Set = true
	if err := m.Save(); err != nil {
		m.logger.Warn("prefs: not saved", slog.Any("error", err))
	}
}
