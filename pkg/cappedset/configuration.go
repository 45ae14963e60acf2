package cappedset

import (
	"math"

	pb "github.com/buildbarn/bb-capped-set/pkg/configuration/cappedset"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewMinimumIndexFactoryFromConfiguration returns a factory of
// MinimumIndex objects using a strategy specified in the
// configuration.
func NewMinimumIndexFactoryFromConfiguration[K comparable](policy pb.MinimumIndexPolicy) (MinimumIndexFactory[K], error) {
	switch policy {
	case "", pb.MinimumIndexPolicy_TRACKING:
		return NewTrackingMinimumIndex[K], nil
	case pb.MinimumIndexPolicy_SCANNING:
		return NewScanningMinimumIndex[K], nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown minimum index policy %#v", string(policy))
	}
}

// NewCappedSetFromConfiguration creates a CappedSet that is safe for
// concurrent use, based on options specified in a configuration
// message.
func NewCappedSetFromConfiguration[K comparable](configuration *pb.Configuration) (CappedSet[K], error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "No capped set configuration provided")
	}
	newMinimumIndex, err := NewMinimumIndexFactoryFromConfiguration[K](configuration.MinimumIndex)
	if err != nil {
		return nil, err
	}
	capacity := configuration.Capacity
	if capacity > math.MaxInt {
		return nil, status.Errorf(codes.InvalidArgument, "Capacity %d is too large", capacity)
	}
	cs, err := NewCappedSet(int(capacity), newMinimumIndex)
	if err != nil {
		return nil, err
	}
	if name := configuration.Name; name != "" {
		cs = NewMetricsCappedSet(cs, name)
	}
	return NewLockingCappedSet(cs), nil
}
