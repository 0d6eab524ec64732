package jsonstore

import (
	"encoding/json"

	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/depsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AppStore = (*AppStore)(nil)

// AppStore implements ports.AppStore as a JSON object keyed by application name.
// Values are always objects; the legacy plain string shape is rejected.
type AppStore struct {
	doc document
}

// NewAppStore creates an AppStore backed by the file at path.
func NewAppStore(path string) *AppStore {
	return &AppStore{doc: document{path: path}}
}

// Path returns the backing file.
func (s *AppStore) Path() string {
	return s.doc.path
}

// Load reads every record. A missing file yields an empty map.
func (s *AppStore) Load() (map[string]domain.ProjectRef, error) {
	data, err := s.doc.read(domain.ErrAppStoreReadFailed)
	if err != nil {
		return nil, err
	}

	records := make(map[string]domain.ProjectRef)
	if data == nil {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAppStoreUnmarshalFailed.Error()), "path", s.doc.path)
	}
	return records, nil
}

// Save replaces the file with records.
func (s *AppStore) Save(records map[string]domain.ProjectRef) error {
	if records == nil {
		records = map[string]domain.ProjectRef{}
	}
	_, err := s.doc.write(records, domain.ErrAppStoreWriteFailed)
	return err
}
