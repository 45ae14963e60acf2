package http_test

import (
	"net/http"
	"testing"

	bb_http "github.com/buildbarn/bb-capped-set/pkg/http"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
)

func TestStatusCodeFromGRPCCode(t *testing.T) {
	for code, want := range map[codes.Code]int{
		codes.InvalidArgument: http.StatusBadRequest,
		codes.NotFound:        http.StatusNotFound,
		codes.AlreadyExists:   http.StatusConflict,
		codes.Unavailable:     http.StatusServiceUnavailable,
		codes.Internal:        http.StatusInternalServerError,
	} {
		require.Equal(t, want, bb_http.StatusCodeFromGRPCCode(code), code.String())
	}
}
