package http_test

import (
	"context"
	"net/http"
	"testing"

	pb "github.com/buildbarn/bb-capped-set/pkg/configuration/http"
	bb_http "github.com/buildbarn/bb-capped-set/pkg/http"
	"github.com/buildbarn/bb-capped-set/pkg/program"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNewServersFromConfigurationAndServe(t *testing.T) {
	t.Run("ShutdownOnCancelation", func(t *testing.T) {
		// Servers should terminate cleanly once the context is
		// canceled, regardless of whether they were already
		// listening.
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			bb_http.NewServersFromConfigurationAndServe(
				[]*pb.ServerConfiguration{{
					ListenAddresses:     []string{"127.0.0.1:0"},
					ShutdownGracePeriod: "1s",
				}},
				http.NotFoundHandler(),
				siblingsGroup)
			return nil
		}))
	})

	t.Run("InvalidShutdownGracePeriod", func(t *testing.T) {
		err := program.RunLocal(context.Background(), func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
			bb_http.NewServersFromConfigurationAndServe(
				[]*pb.ServerConfiguration{{
					ListenAddresses:     []string{"127.0.0.1:0"},
					ShutdownGracePeriod: "forever",
				}},
				http.NotFoundHandler(),
				siblingsGroup)
			return nil
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
