package aliases

import (
	"github.com/buildbarn/bb-capped-set/pkg/address"
	"github.com/buildbarn/bb-capped-set/pkg/cappedset"
)

// This file contains aliases for generic interfaces, instantiated with
// the types that are used by bb_capped_set. The only reason this file
// exists is to allow mockgen to emit non-generic mocks for them.

// CappedSet is an alias of cappedset.CappedSet for addresses.
type CappedSet = cappedset.CappedSet[address.Address]
