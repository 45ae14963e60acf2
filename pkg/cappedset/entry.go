package cappedset

// Entry is a pair of a key and the magnitude associated with it, as
// returned by the operations of CappedSet.
type Entry[K comparable] struct {
	Key   K
	Value uint64
}

// Absent returns the sentinel entry that is used in places where no
// entry exists, but a value still needs to be returned. It consists of
// the zero key and a zero magnitude. It cannot be confused with a real
// entry, as stored magnitudes are always positive.
func Absent[K comparable]() Entry[K] {
	return Entry[K]{}
}

// IsAbsent returns true if the entry is the Absent() sentinel.
func (e Entry[K]) IsAbsent() bool {
	return e.Value == 0
}
