// Package cappedset contains the configuration messages of capped sets.
package cappedset

// MinimumIndexPolicy selects how a capped set keeps track of its
// smallest entry.
type MinimumIndexPolicy string

const (
	// MinimumIndexPolicy_TRACKING caches the smallest entry, only
	// scanning all entries when it is removed or increased.
	MinimumIndexPolicy_TRACKING MinimumIndexPolicy = "TRACKING"
	// MinimumIndexPolicy_SCANNING scans all entries every time the
	// smallest entry is requested.
	MinimumIndexPolicy_SCANNING MinimumIndexPolicy = "SCANNING"
)

// Configuration of a single capped set.
type Configuration struct {
	// Name of the capped set, used as a label in Prometheus metrics.
	// Metrics are disabled if left empty.
	Name string `json:"name,omitempty"`

	// Maximum number of entries in the set. Must be positive.
	Capacity int64 `json:"capacity,omitempty"`

	// Strategy for tracking the smallest entry. Defaults to
	// TRACKING.
	MinimumIndex MinimumIndexPolicy `json:"minimumIndex,omitempty"`
}
