package muscle

import (
	"errors"
	"fmt"
	"io/fs"
)

// Store is the picker's mapping with write-through persistence: every
// mutation rewrites the whole file before returning.
type Store struct {
	path    string
	mapping *Mapping
}

// NewStore creates a store for mapping persisted at path. Nothing is written
// until the first mutation or an explicit Persist.
func NewStore(path string, mapping *Mapping) *Store {
	if mapping == nil {
		mapping = NewMapping()
	}
	return &Store{path: path, mapping: mapping}
}

// ResumeStore loads the mapping at path if it exists and adds any of groups
// that are missing. A missing file starts an empty mapping.
func ResumeStore(path string, groups []string) (*Store, error) {
	m, err := LoadMapping(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(path, NewMapping(groups...)), nil
	}
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		m.ensure(g)
	}
	return NewStore(path, m), nil
}

// Path returns the definition file path.
func (s *Store) Path() string {
	return s.path
}

// Mapping returns a snapshot of the current mapping.
func (s *Store) Mapping() *Mapping {
	return s.mapping.Clone()
}

// Groups returns the group names in order.
func (s *Store) Groups() []string {
	return s.mapping.Groups()
}

// Append adds index to group and persists. The index is dropped again when
// the write fails, so the mapping keeps matching the file.
func (s *Store) Append(group string, index int) error {
	s.mapping.Append(group, index)
	if err := s.Persist(); err != nil {
		s.mapping.Undo(group)
		return err
	}
	return nil
}

// Undo removes the last index of group and persists. ok is false when the
// group was already empty.
func (s *Store) Undo(group string) (removed int, ok bool, err error) {
	removed, ok = s.mapping.Undo(group)
	return removed, ok, s.Persist()
}

// Clear empties group and persists.
func (s *Store) Clear(group string) error {
	s.mapping.Clear(group)
	return s.Persist()
}

// Reset empties all groups and persists.
func (s *Store) Reset() error {
	s.mapping.Reset()
	return s.Persist()
}

// Persist rewrites the definition file with the full mapping.
func (s *Store) Persist() error {
	if err := SaveMapping(s.path, s.mapping); err != nil {
		return fmt.Errorf("failed to persist %s: %w", s.path, err)
	}
	return nil
}
