package cappedset_test

import (
	"testing"

	"github.com/buildbarn/bb-capped-set/pkg/cappedset"
	"github.com/lazybeaver/xorshift"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// referenceCappedSet is a straightforward model of CappedSet that
// computes the smallest entry by scanning all entries, in the order in
// which they were inserted.
type referenceCappedSet struct {
	capacity int
	keys     []int
	values   map[int]uint64
}

func newReferenceCappedSet(capacity int) *referenceCappedSet {
	return &referenceCappedSet{
		capacity: capacity,
		values:   map[int]uint64{},
	}
}

func (rs *referenceCappedSet) minimum() cappedset.Entry[int] {
	minimum := cappedset.Absent[int]()
	for _, key := range rs.keys {
		if value := rs.values[key]; minimum.IsAbsent() || value < minimum.Value {
			minimum = cappedset.Entry[int]{Key: key, Value: value}
		}
	}
	return minimum
}

func (rs *referenceCappedSet) remove(key int) {
	for i, k := range rs.keys {
		if k == key {
			rs.keys = append(rs.keys[:i], rs.keys[i+1:]...)
			break
		}
	}
	delete(rs.values, key)
}

func (rs *referenceCappedSet) Insert(key int, value uint64) (cappedset.Entry[int], codes.Code) {
	if value == 0 {
		return cappedset.Entry[int]{}, codes.InvalidArgument
	}
	if _, ok := rs.values[key]; ok {
		return cappedset.Entry[int]{}, codes.AlreadyExists
	}
	if len(rs.keys) < rs.capacity {
		previous := rs.minimum()
		rs.keys = append(rs.keys, key)
		rs.values[key] = value
		return previous, codes.OK
	}
	rs.remove(rs.minimum().Key)
	rs.keys = append(rs.keys, key)
	rs.values[key] = value
	return rs.minimum(), codes.OK
}

func (rs *referenceCappedSet) Update(key int, value uint64) (cappedset.Entry[int], codes.Code) {
	if _, ok := rs.values[key]; !ok {
		return cappedset.Entry[int]{}, codes.NotFound
	}
	if value == 0 {
		return cappedset.Entry[int]{}, codes.InvalidArgument
	}
	rs.values[key] = value
	return cappedset.Entry[int]{Key: key, Value: value}, codes.OK
}

func (rs *referenceCappedSet) Remove(key int) (cappedset.Entry[int], codes.Code) {
	if _, ok := rs.values[key]; !ok {
		return cappedset.Entry[int]{}, codes.NotFound
	}
	rs.remove(key)
	return rs.minimum(), codes.OK
}

func (rs *referenceCappedSet) GetValue(key int) (uint64, codes.Code) {
	value, ok := rs.values[key]
	if !ok {
		return 0, codes.NotFound
	}
	return value, codes.OK
}

func TestCappedSetRandomized(t *testing.T) {
	// Apply the same pseudo random sequence of operations against
	// both implementations and the reference model. Keys and
	// magnitudes are drawn from small ranges, so that collisions
	// and equal magnitudes occur frequently.
	for capacity := 1; capacity <= 8; capacity++ {
		rng := xorshift.NewXorShift64Star(uint64(capacity))
		reference := newReferenceCappedSet(capacity)
		tracking, err := cappedset.NewCappedSet(capacity, cappedset.NewTrackingMinimumIndex[int])
		require.NoError(t, err)
		scanning, err := cappedset.NewCappedSet(capacity, cappedset.NewScanningMinimumIndex[int])
		require.NoError(t, err)

		for i := 0; i < 5000; i++ {
			key := int(rng.Next() % 12)
			value := rng.Next() % 8
			switch rng.Next() % 4 {
			case 0, 1:
				wantEntry, wantCode := reference.Insert(key, value)
				for _, cs := range []cappedset.CappedSet[int]{tracking, scanning} {
					entry, err := cs.Insert(key, value)
					require.Equal(t, wantCode, status.Code(err), "Insert(%d, %d) at step %d", key, value, i)
					require.Equal(t, wantEntry, entry, "Insert(%d, %d) at step %d", key, value, i)
				}
			case 2:
				wantEntry, wantCode := reference.Update(key, value)
				for _, cs := range []cappedset.CappedSet[int]{tracking, scanning} {
					entry, err := cs.Update(key, value)
					require.Equal(t, wantCode, status.Code(err), "Update(%d, %d) at step %d", key, value, i)
					require.Equal(t, wantEntry, entry, "Update(%d, %d) at step %d", key, value, i)
				}
			case 3:
				wantEntry, wantCode := reference.Remove(key)
				for _, cs := range []cappedset.CappedSet[int]{tracking, scanning} {
					entry, err := cs.Remove(key)
					require.Equal(t, wantCode, status.Code(err), "Remove(%d) at step %d", key, i)
					require.Equal(t, wantEntry, entry, "Remove(%d) at step %d", key, i)
				}
			}

			// Sizes must match and never exceed the capacity.
			require.LessOrEqual(t, len(reference.keys), capacity)
			require.Equal(t, len(reference.keys), tracking.Len())
			require.Equal(t, len(reference.keys), scanning.Len())
			for key := 0; key < 12; key++ {
				wantValue, wantCode := reference.GetValue(key)
				for _, cs := range []cappedset.CappedSet[int]{tracking, scanning} {
					value, err := cs.GetValue(key)
					require.Equal(t, wantCode, status.Code(err))
					require.Equal(t, wantValue, value)
				}
			}
		}
	}
}
