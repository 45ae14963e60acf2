package cappedset

import (
	"sync"
)

type lockingCappedSet[K comparable] struct {
	lock sync.Mutex
	base CappedSet[K]
}

// NewLockingCappedSet is a decorator for CappedSet that serializes all
// calls against the underlying CappedSet, making it safe to use from
// multiple goroutines. Each operation is atomic with respect to the
// others.
func NewLockingCappedSet[K comparable](base CappedSet[K]) CappedSet[K] {
	return &lockingCappedSet[K]{
		base: base,
	}
}

func (cs *lockingCappedSet[K]) Capacity() int {
	return cs.base.Capacity()
}

func (cs *lockingCappedSet[K]) Len() int {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	return cs.base.Len()
}

func (cs *lockingCappedSet[K]) Insert(key K, value uint64) (Entry[K], error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	return cs.base.Insert(key, value)
}

func (cs *lockingCappedSet[K]) Update(key K, value uint64) (Entry[K], error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	return cs.base.Update(key, value)
}

func (cs *lockingCappedSet[K]) Remove(key K) (Entry[K], error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	return cs.base.Remove(key)
}

func (cs *lockingCappedSet[K]) GetValue(key K) (uint64, error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()
	return cs.base.GetValue(key)
}
