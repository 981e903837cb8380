package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	Serializer    string     `json:"serializer"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	// Defaulted is true when the last load found no file.
	Defaulted bool `json:"defaulted"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		ReadOnly:      r.config.ReadOnly,
		Serializer:    r.serializer.Name(),
		WatcherActive: r.watcherActive,
		LastSave:      r.lastSave,
		LastLoad:      r.lastLoad,
		Defaulted:     r.defaulted,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
