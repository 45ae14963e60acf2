package http

import (
	"context"
	"net/http"
	"time"

	pb "github.com/buildbarn/bb-capped-set/pkg/configuration/http"
	"github.com/buildbarn/bb-capped-set/pkg/program"
	"github.com/buildbarn/bb-capped-set/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewServersFromConfigurationAndServe spawns HTTP servers as part of a
// program.Group, based on a configuration message. The web servers are
// automatically shut down if the context associated with the group is
// canceled.
func NewServersFromConfigurationAndServe(configurations []*pb.ServerConfiguration, handler http.Handler, group program.Group) {
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		for _, configuration := range configurations {
			var shutdownGracePeriod time.Duration
			if d := configuration.ShutdownGracePeriod; d != "" {
				var err error
				shutdownGracePeriod, err = time.ParseDuration(d)
				if err != nil {
					return util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid shutdown grace period")
				}
				if shutdownGracePeriod < 0 {
					return status.Errorf(codes.InvalidArgument, "Shutdown grace period %s is negative", d)
				}
			}

			for _, listenAddress := range configuration.ListenAddresses {
				server := &http.Server{
					Addr:    listenAddress,
					Handler: handler,
				}
				siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGracePeriod)
					defer cancel()
					if err := server.Shutdown(shutdownCtx); err != nil {
						// Grace period expired.
						return server.Close()
					}
					return nil
				})
				siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					if err := server.ListenAndServe(); err != http.ErrServerClosed {
						return util.StatusWrapf(err, "Failed to launch HTTP server %#v", server.Addr)
					}
					return nil
				})
			}
		}
		return nil
	})
}
