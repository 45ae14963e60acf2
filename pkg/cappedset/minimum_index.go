package cappedset

// MinimumIndex keeps track of the entry in an EntryStore that has the
// smallest magnitude. Entries are ordered by magnitude first. Entries
// with the same magnitude are ordered by insertion, meaning that the
// entry that was inserted earliest is considered to be the smallest.
//
// A MinimumIndex is bound to a single EntryStore. The On*() methods
// must be called after the EntryStore has been mutated accordingly.
// MinimumIndex does not permit concurrent access.
type MinimumIndex[K comparable] interface {
	// Current returns the smallest entry in the EntryStore, or
	// Absent() if the EntryStore is empty.
	Current() Entry[K]

	// OnInserted must be called after an entry has been added.
	OnInserted(key K, value uint64)

	// OnRemoved must be called after an entry has been deleted.
	OnRemoved(key K)

	// OnUpdated must be called after the magnitude of an entry has
	// been changed.
	OnUpdated(key K, value uint64)
}

// MinimumIndexFactory creates a MinimumIndex for a given EntryStore.
type MinimumIndexFactory[K comparable] func(store *EntryStore[K]) MinimumIndex[K]

// scanMinimum computes the smallest entry in an EntryStore by visiting
// all of its entries.
func scanMinimum[K comparable](store *EntryStore[K]) (Entry[K], uint64) {
	minimum, minimumSequence := Absent[K](), uint64(0)
	store.Scan(func(key K, value, sequence uint64) bool {
		if minimum.IsAbsent() || value < minimum.Value || (value == minimum.Value && sequence < minimumSequence) {
			minimum = Entry[K]{Key: key, Value: value}
			minimumSequence = sequence
		}
		return true
	})
	return minimum, minimumSequence
}

type trackingMinimumIndex[K comparable] struct {
	store           *EntryStore[K]
	minimum         Entry[K]
	minimumSequence uint64
}

// NewTrackingMinimumIndex creates a MinimumIndex that caches the
// smallest entry. Insertions and removals of entries other than the
// smallest one run in constant time. Only removing the smallest entry
// or increasing its magnitude causes all entries to be scanned.
func NewTrackingMinimumIndex[K comparable](store *EntryStore[K]) MinimumIndex[K] {
	mi := &trackingMinimumIndex[K]{store: store}
	mi.recompute()
	return mi
}

func (mi *trackingMinimumIndex[K]) recompute() {
	mi.minimum, mi.minimumSequence = scanMinimum(mi.store)
}

func (mi *trackingMinimumIndex[K]) Current() Entry[K] {
	return mi.minimum
}

func (mi *trackingMinimumIndex[K]) OnInserted(key K, value uint64) {
	// Newly inserted entries have the highest sequence number, so
	// they only become the minimum if they are strictly smaller.
	if mi.minimum.IsAbsent() || value < mi.minimum.Value {
		mi.minimum = Entry[K]{Key: key, Value: value}
		mi.minimumSequence = mi.store.sequence(key)
	}
}

func (mi *trackingMinimumIndex[K]) OnRemoved(key K) {
	if !mi.minimum.IsAbsent() && mi.minimum.Key == key {
		mi.recompute()
	}
}

func (mi *trackingMinimumIndex[K]) OnUpdated(key K, value uint64) {
	if mi.minimum.IsAbsent() {
		mi.recompute()
		return
	}
	if mi.minimum.Key == key {
		if value > mi.minimum.Value {
			// Another entry may now be smaller.
			mi.recompute()
		} else {
			mi.minimum.Value = value
		}
		return
	}
	sequence := mi.store.sequence(key)
	if value < mi.minimum.Value || (value == mi.minimum.Value && sequence < mi.minimumSequence) {
		mi.minimum = Entry[K]{Key: key, Value: value}
		mi.minimumSequence = sequence
	}
}

type scanningMinimumIndex[K comparable] struct {
	store *EntryStore[K]
}

// NewScanningMinimumIndex creates a MinimumIndex that keeps no state
// of its own. Every call to Current() scans all entries. This is
// adequate for sets with a small capacity.
func NewScanningMinimumIndex[K comparable](store *EntryStore[K]) MinimumIndex[K] {
	return scanningMinimumIndex[K]{store: store}
}

func (mi scanningMinimumIndex[K]) Current() Entry[K] {
	minimum, _ := scanMinimum(mi.store)
	return minimum
}

func (scanningMinimumIndex[K]) OnInserted(key K, value uint64) {}

func (scanningMinimumIndex[K]) OnRemoved(key K) {}

func (scanningMinimumIndex[K]) OnUpdated(key K, value uint64) {}
