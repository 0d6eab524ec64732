package ports

import "go.trai.ch/depsync/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// AppStore persists application records. The whole document is loaded and saved at once.
type AppStore interface {
	// Load returns every record. A missing store yields an empty map.
	Load() (map[string]domain.ProjectRef, error)

	// Save replaces the stored records.
	Save(records map[string]domain.ProjectRef) error
}

// DependencyStore persists per-application dependency sets.
// The whole document is loaded and saved at once.
type DependencyStore interface {
	// Load returns every dependency set. A missing store yields an empty map.
	Load() (map[string]domain.DependencySet, error)

	// Save replaces the stored dependency sets.
	Save(sets map[string]domain.DependencySet) error
}
