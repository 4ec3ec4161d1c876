// Package store persists one JSON document per service instance. The store
// owns the canonical document; services read and mutate it only inside
// View/Update callbacks, which run under the document mutex so a full
// read-mutate-persist sequence is never interleaved with another request.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/buurtmarkt/backend/internal/fault"
)

// Meta is the descriptive document header. Unused by logic.
type Meta struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Store owns one JSON document of type D backed by a file.
type Store[D any] struct {
	mu   sync.Mutex
	path string
	doc  *D
}

// Open parses the document at path, or creates the file with defaultDoc when
// it does not exist yet.
func Open[D any](path string, defaultDoc D) (*Store[D], error) {
	s := &Store[D]{path: path, doc: &defaultDoc}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if perr := s.persist(); perr != nil {
			return nil, perr
		}
		return s, nil
	}
	if err != nil {
		return nil, &fault.StorageError{Op: "read " + path, Err: err}
	}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return nil, &fault.StorageError{Op: "parse " + path, Err: err}
	}
	return s, nil
}

// View runs fn with the current document under the store lock. fn must not
// retain the pointer past its return.
func (s *Store[D]) View(fn func(doc *D)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn under the store lock and, when fn succeeds, persists the
// full document. A persist failure leaves the in-memory mutation in place;
// memory and disk stay diverged until the next successful write.
func (s *Store[D]) Update(fn func(doc *D) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.persist()
}

// persist writes the whole document atomically: a temp file in the same
// directory is renamed over the target, so a concurrent reader never observes
// a partial document. Caller holds the lock.
func (s *Store[D]) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return &fault.StorageError{Op: "encode " + s.path, Err: err}
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return &fault.StorageError{Op: "create temp for " + s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &fault.StorageError{Op: "write " + s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &fault.StorageError{Op: "close " + s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &fault.StorageError{Op: "rename " + s.path, Err: err}
	}
	return nil
}

// Current returns the live document. Test support; handlers go through
// View/Update.
func (s *Store[D]) Current() *D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Replace swaps the active document, e.g. to isolate test runs. The next
// Update persists the replacement.
func (s *Store[D]) Replace(doc *D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}
