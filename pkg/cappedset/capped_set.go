package cappedset

import (
	"github.com/buildbarn/bb-capped-set/pkg/util"
)

// CappedSet is a map from keys to positive magnitudes that holds a
// bounded number of entries. Once the set is full, inserting a new
// entry evicts the entry with the smallest magnitude.
//
// All errors returned are gRPC status errors. An operation that fails
// leaves the set unmodified.
type CappedSet[K comparable] interface {
	// Capacity returns the maximum number of entries in the set.
	Capacity() int

	// Len returns the number of entries currently in the set.
	Len() int

	// Insert a new entry into the set. If the set is not full, the
	// smallest entry prior to insertion is returned, or Absent()
	// if the set was empty. If the set is full, the smallest entry
	// is evicted first, regardless of the magnitude of the entry
	// being inserted. The smallest entry after insertion is
	// returned in that case.
	Insert(key K, value uint64) (Entry[K], error)

	// Update the magnitude of an existing entry. The updated entry
	// is returned.
	Update(key K, value uint64) (Entry[K], error)

	// Remove an existing entry. The smallest entry remaining in the
	// set is returned, or Absent() if the set is now empty.
	Remove(key K) (Entry[K], error)

	// GetValue returns the magnitude of an existing entry.
	GetValue(key K) (uint64, error)
}

type cappedSet[K comparable] struct {
	capacity     int
	store        *EntryStore[K]
	minimumIndex MinimumIndex[K]
}

// NewCappedSet creates a CappedSet that is empty. The provided factory
// determines how the smallest entry is tracked.
//
// The CappedSet returned by this function does not permit concurrent
// access. Use NewLockingCappedSet() to serialize access to it.
func NewCappedSet[K comparable](capacity int, newMinimumIndex MinimumIndexFactory[K]) (CappedSet[K], error) {
	if capacity <= 0 {
		return nil, util.StatusWrapf(errInvalidCapacity, "Got capacity %d", capacity)
	}
	store := NewEntryStore[K]()
	return &cappedSet[K]{
		capacity:     capacity,
		store:        store,
		minimumIndex: newMinimumIndex(store),
	}, nil
}

func (cs *cappedSet[K]) Capacity() int {
	return cs.capacity
}

func (cs *cappedSet[K]) Len() int {
	return cs.store.Len()
}

func (cs *cappedSet[K]) Insert(key K, value uint64) (Entry[K], error) {
	if value == 0 {
		return Entry[K]{}, errInvalidMagnitude
	}
	if cs.store.Has(key) {
		return Entry[K]{}, errAlreadyPresent
	}

	if cs.store.Len() < cs.capacity {
		previous := cs.minimumIndex.Current()
		cs.put(key, value)
		return previous, nil
	}

	// Set is full. Evict the smallest entry to make room.
	evictee := cs.minimumIndex.Current()
	if err := cs.store.Delete(evictee.Key); err != nil {
		panic("Minimum index refers to an entry that is not present in the store")
	}
	cs.minimumIndex.OnRemoved(evictee.Key)
	cs.put(key, value)
	return cs.minimumIndex.Current(), nil
}

func (cs *cappedSet[K]) put(key K, value uint64) {
	if err := cs.store.Put(key, value); err != nil {
		panic("Entry was validated prior to insertion: " + err.Error())
	}
	cs.minimumIndex.OnInserted(key, value)
}

func (cs *cappedSet[K]) Update(key K, value uint64) (Entry[K], error) {
	if err := cs.store.Set(key, value); err != nil {
		return Entry[K]{}, err
	}
	cs.minimumIndex.OnUpdated(key, value)
	return Entry[K]{Key: key, Value: value}, nil
}

func (cs *cappedSet[K]) Remove(key K) (Entry[K], error) {
	if err := cs.store.Delete(key); err != nil {
		return Entry[K]{}, err
	}
	cs.minimumIndex.OnRemoved(key)
	return cs.minimumIndex.Current(), nil
}

func (cs *cappedSet[K]) GetValue(key K) (uint64, error) {
	return cs.store.Get(key)
}
