package cappedset

type storedValue struct {
	value    uint64
	sequence uint64
}

// EntryStore is a map from keys to positive magnitudes. It only
// enforces uniqueness of keys. It has no notion of ordering or
// capacity; those are provided by MinimumIndex and CappedSet,
// respectively.
//
// Each entry is tagged with a sequence number that reflects the order
// in which entries were inserted. MinimumIndex implementations use it
// to break ties between entries with the same magnitude.
//
// EntryStore does not permit concurrent access.
type EntryStore[K comparable] struct {
	entries      map[K]storedValue
	nextSequence uint64
}

// NewEntryStore creates an EntryStore that contains no entries.
func NewEntryStore[K comparable]() *EntryStore[K] {
	return &EntryStore[K]{
		entries: map[K]storedValue{},
	}
}

// Has returns whether an entry for the key exists.
func (s *EntryStore[K]) Has(key K) bool {
	_, ok := s.entries[key]
	return ok
}

// Get the magnitude of an existing entry.
func (s *EntryStore[K]) Get(key K) (uint64, error) {
	v, ok := s.entries[key]
	if !ok {
		return 0, errNotFound
	}
	return v.value, nil
}

// Put inserts a new entry. The key may not be present yet.
func (s *EntryStore[K]) Put(key K, value uint64) error {
	if value == 0 {
		return errInvalidMagnitude
	}
	if s.Has(key) {
		return errAlreadyPresent
	}
	s.entries[key] = storedValue{
		value:    value,
		sequence: s.nextSequence,
	}
	s.nextSequence++
	return nil
}

// Set overwrites the magnitude of an existing entry. The entry retains
// its original insertion sequence number.
func (s *EntryStore[K]) Set(key K, value uint64) error {
	v, ok := s.entries[key]
	if !ok {
		return errNotFound
	}
	if value == 0 {
		return errInvalidMagnitude
	}
	v.value = value
	s.entries[key] = v
	return nil
}

// Delete an existing entry.
func (s *EntryStore[K]) Delete(key K) error {
	if !s.Has(key) {
		return errNotFound
	}
	delete(s.entries, key)
	return nil
}

// Len returns the number of entries in the store.
func (s *EntryStore[K]) Len() int {
	return len(s.entries)
}

// Scan calls a function for every entry in the store, in no particular
// order, until the function returns false.
func (s *EntryStore[K]) Scan(f func(key K, value, sequence uint64) bool) {
	for key, v := range s.entries {
		if !f(key, v.value, v.sequence) {
			return
		}
	}
}

func (s *EntryStore[K]) sequence(key K) uint64 {
	return s.entries[key].sequence
}
