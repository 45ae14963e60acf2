package cappedset_test

import (
	"testing"

	"github.com/buildbarn/bb-capped-set/pkg/cappedset"
	"github.com/lazybeaver/xorshift"
	"github.com/stretchr/testify/require"
)

// linearScanMinimum computes the smallest entry in a store without
// relying on any MinimumIndex implementation.
func linearScanMinimum(store *cappedset.EntryStore[uint64]) cappedset.Entry[uint64] {
	minimum, minimumSequence := cappedset.Absent[uint64](), uint64(0)
	store.Scan(func(key, value, sequence uint64) bool {
		if minimum.IsAbsent() || value < minimum.Value || (value == minimum.Value && sequence < minimumSequence) {
			minimum = cappedset.Entry[uint64]{Key: key, Value: value}
			minimumSequence = sequence
		}
		return true
	})
	return minimum
}

func TestTrackingMinimumIndexExample(t *testing.T) {
	store := cappedset.NewEntryStore[string]()
	mi := cappedset.NewTrackingMinimumIndex(store)
	require.Equal(t, cappedset.Absent[string](), mi.Current())

	for _, e := range []cappedset.Entry[string]{
		{Key: "zizyphus", Value: 30},
		{Key: "melologue", Value: 10},
		{Key: "heortology", Value: 20},
		{Key: "owling", Value: 10},
	} {
		require.NoError(t, store.Put(e.Key, e.Value))
		mi.OnInserted(e.Key, e.Value)
	}
	require.Equal(t, cappedset.Entry[string]{Key: "melologue", Value: 10}, mi.Current())

	// Removing an entry other than the minimum has no effect.
	require.NoError(t, store.Delete("zizyphus"))
	mi.OnRemoved("zizyphus")
	require.Equal(t, cappedset.Entry[string]{Key: "melologue", Value: 10}, mi.Current())

	// Removing the minimum promotes the earliest inserted entry
	// having the same magnitude.
	require.NoError(t, store.Delete("melologue"))
	mi.OnRemoved("melologue")
	require.Equal(t, cappedset.Entry[string]{Key: "owling", Value: 10}, mi.Current())

	// Lowering the minimum keeps it in place.
	require.NoError(t, store.Set("owling", 5))
	mi.OnUpdated("owling", 5)
	require.Equal(t, cappedset.Entry[string]{Key: "owling", Value: 5}, mi.Current())

	// Raising the minimum above another entry hands it over.
	require.NoError(t, store.Set("owling", 25))
	mi.OnUpdated("owling", 25)
	require.Equal(t, cappedset.Entry[string]{Key: "heortology", Value: 20}, mi.Current())

	require.NoError(t, store.Delete("heortology"))
	mi.OnRemoved("heortology")
	require.NoError(t, store.Delete("owling"))
	mi.OnRemoved("owling")
	require.Equal(t, cappedset.Absent[string](), mi.Current())
}

func TestTrackingMinimumIndexNonEmptyStore(t *testing.T) {
	// Indexes created against a store that already contains
	// entries start out consistent.
	store := cappedset.NewEntryStore[string]()
	require.NoError(t, store.Put("gemmation", 8))
	require.NoError(t, store.Put("jordan", 3))
	require.Equal(t, cappedset.Entry[string]{Key: "jordan", Value: 3}, cappedset.NewTrackingMinimumIndex(store).Current())
	require.Equal(t, cappedset.Entry[string]{Key: "jordan", Value: 3}, cappedset.NewScanningMinimumIndex(store).Current())
}

func TestMinimumIndexRandomized(t *testing.T) {
	for name, newMinimumIndex := range map[string]cappedset.MinimumIndexFactory[uint64]{
		"Tracking": cappedset.NewTrackingMinimumIndex[uint64],
		"Scanning": cappedset.NewScanningMinimumIndex[uint64],
	} {
		t.Run(name, func(t *testing.T) {
			store := cappedset.NewEntryStore[uint64]()
			mi := newMinimumIndex(store)
			rng := xorshift.NewXorShift64Star(42)

			for i := 0; i < 10000; i++ {
				key := rng.Next() % 16
				value := rng.Next()%10 + 1
				switch {
				case !store.Has(key):
					require.NoError(t, store.Put(key, value))
					mi.OnInserted(key, value)
				case rng.Next()%2 == 0:
					require.NoError(t, store.Set(key, value))
					mi.OnUpdated(key, value)
				default:
					require.NoError(t, store.Delete(key))
					mi.OnRemoved(key)
				}
				require.Equal(t, linearScanMinimum(store), mi.Current(), "Step %d", i)
			}
		})
	}
}
