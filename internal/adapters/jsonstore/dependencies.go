package jsonstore

import (
	"encoding/json"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyStore = (*DependencyStore)(nil)

// DependencyStore implements ports.DependencyStore as a JSON object mapping
// application names to sorted token arrays.
type DependencyStore struct {
	doc document
}

// NewDependencyStore creates a DependencyStore backed by the file at path.
func NewDependencyStore(path string) *DependencyStore {
	return &DependencyStore{doc: document{path: path}}
}

// Path returns the backing file.
func (s *DependencyStore) Path() string {
	return s.doc.path
}

// Load reads every dependency set. A missing file yields an empty map.
func (s *DependencyStore) Load() (map[string]domain.DependencySet, error) {
	data, err := s.doc.read(domain.ErrDependencyStoreReadFailed)
	if err != nil {
		return nil, err
	}

	sets := make(map[string]domain.DependencySet)
	if data == nil {
		return sets, nil
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDependencyStoreUnmarshalFailed.Error()), "path", s.doc.path)
	}

	for app, tokens := range raw {
		sets[app] = domain.NewDependencySet(tokens...)
	}
	return sets, nil
}

// Save replaces the file with sets. Arrays are written sorted.
func (s *DependencyStore) Save(sets map[string]domain.DependencySet) error {
	raw := make(map[string][]string, len(sets))
	for app, set := range sets {
		raw[app] = set.Sorted()
	}
	_, err := s.doc.write(raw, domain.ErrDependencyStoreWriteFailed)
	return err
}
