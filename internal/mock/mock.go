// Package mock contains gomock stubs of interfaces used throughout
// bb_capped_set.
package mock

//go:generate mockgen -package mock -destination cappedset.go github.com/buildbarn/bb-capped-set/internal/mock/aliases CappedSet
//go:generate mockgen -package mock -destination util.go github.com/buildbarn/bb-capped-set/pkg/util ErrorLogger
