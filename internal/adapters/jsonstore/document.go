// Package jsonstore persists the application records and dependency sets as JSON documents.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const indent = "    "

// document is a whole-file JSON document. It remembers the digest of the bytes
// last read or written so that saving unchanged content is a no-op.
type document struct {
	path   string
	digest uint64
	synced bool
}

// read returns the raw content, or nil when the file does not exist or is blank.
func (d *document) read(readErr error) ([]byte, error) {
	//nolint:gosec // Path is configured by the operator
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		d.synced = false
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, readErr.Error()), "path", d.path)
	}

	d.digest = xxhash.Sum64(data)
	d.synced = true

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

// write marshals v with a four space indent and replaces the file atomically.
// It reports whether the file was actually written.
func (d *document) write(v any, writeErr error) (bool, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", d.path)
	}

	digest := xxhash.Sum64(data)
	if d.synced && digest == d.digest {
		return false, nil
	}

	if err := atomicWriteFile(d.path, data); err != nil {
		return false, zerr.With(zerr.Wrap(err, writeErr.Error()), "path", d.path)
	}

	d.digest = digest
	d.synced = true
	return true, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
