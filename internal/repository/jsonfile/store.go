package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Store keeps the set of known user IDs in memory and mirrors every
// change to a single JSON file (a flat array of numeric IDs). The file
// is rewritten wholesale on each mutation so it never lags the set.
type Store struct {
	path string

	mu  sync.Mutex
	ids map[int64]struct{}
}

// New loads the store from path. A missing file yields an empty set;
// any other read or parse error is returned.
func New(path string) (*Store, error) {
	s := &Store{
		path: path,
		ids:  make(map[int64]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read user store %s: %w", path, err)
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parse user store %s: %w", path, err)
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s, nil
}

// Contains reports whether userID has been recorded before.
func (s *Store) Contains(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[userID]
	return ok
}

// Record inserts userID and persists the full set. It is a no-op for
// IDs already present. A write failure is returned with the in-memory
// insertion rolled back, so a retry goes through the same path.
func (s *Store) Record(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[userID]; ok {
		return nil
	}

	s.ids[userID] = struct{}{}
	if err := s.persist(); err != nil {
		delete(s.ids, userID)
		return fmt.Errorf("persist user store %s: %w", s.path, err)
	}
	return nil
}

// Len returns the number of recorded IDs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// persist writes the set as a sorted JSON array, staged through a
// temp file and renamed so a crash mid-write cannot leave a
// half-written store behind. Caller holds s.mu.
func (s *Store) persist() error {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
