package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julianstephens/routinely/internal/errors"
)

// Store is a whole-document JSON store for one domain. Every mutation is
// a load-modify-save cycle over the full document; the per-store mutex
// makes that cycle atomic with respect to other callers in the process.
// Documents for different domains are independent and never share a lock.
type Store[T any] struct {
	path     string
	defaults func() T
	mu       sync.Mutex
}

// Open creates a store for the document at path. The containing
// directory is created if needed. A missing document is not an error:
// the default document is written on first open so the file is always
// present and inspectable afterwards.
func Open[T any](path string, defaults func() T) (*Store[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %v", errors.ErrIO, err)
	}

	s := &Store[T]{path: path, defaults: defaults}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(defaults()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Load reads and parses the persisted document. A missing file yields
// the default document; a present but malformed file is a hard failure.
func (s *Store[T]) Load() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save overwrites the persisted document.
func (s *Store[T]) Save(doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn on the current document and persists the result, all
// under the store lock. If fn returns an error nothing is written.
func (s *Store[T]) Update(fn func(doc *T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

// Path returns the location of the persisted document.
func (s *Store[T]) Path() string {
	return s.path
}

func (s *Store[T]) load() (T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.defaults(), nil
		}
		var zero T
		return zero, fmt.Errorf("%w: failed to read %s: %v", errors.ErrIO, s.path, err)
	}

	doc := s.defaults()
	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: failed to parse %s: %v", errors.ErrCorruptState, s.path, err)
	}

	return doc, nil
}

// write persists the document with a temp-file-then-rename so a crash
// mid-write never leaves a truncated document behind.
func (s *Store[T]) write(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", errors.ErrIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write %s: %v", errors.ErrIO, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write %s: %v", errors.ErrIO, s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace %s: %v", errors.ErrIO, s.path, err)
	}

	return nil
}
