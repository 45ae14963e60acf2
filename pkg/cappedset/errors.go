package cappedset

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errInvalidMagnitude = status.Error(codes.InvalidArgument, "Value must be greater than zero")
	errAlreadyPresent   = status.Error(codes.AlreadyExists, "Key was inserted already")
	errNotFound         = status.Error(codes.NotFound, "Key should be set")
	errInvalidCapacity  = status.Error(codes.InvalidArgument, "Capacity must be greater than zero")
)
