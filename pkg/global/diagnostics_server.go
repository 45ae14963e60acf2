package global

import (
	"context"
	"net/http"
	"sync/atomic"

	// The pprof package does not provide a function for registering
	// its endpoints against an arbitrary mux. Load it to force
	// registration against the default mux, so we can forward
	// traffic to that mux instead.
	_ "net/http/pprof"

	pb "github.com/buildbarn/bb-capped-set/pkg/configuration/global"
	"github.com/buildbarn/bb-capped-set/pkg/program"
	"github.com/buildbarn/bb-capped-set/pkg/util"
	"github.com/gorilla/mux"
)

// DiagnosticsServer is returned by ApplyConfiguration. It can be used by
// the caller to report whether the application has started up
// successfully.
type DiagnosticsServer struct {
	config         *pb.DiagnosticsHTTPServerConfiguration
	metricsHandler http.Handler
	ready          atomic.Bool
}

// Handler returns the HTTP handler of the diagnostics server. It
// exposes health and readiness checks, and optionally Prometheus
// metrics and profiling endpoints.
func (ds *DiagnosticsServer) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/-/healthy", func(http.ResponseWriter, *http.Request) {})
	router.HandleFunc("/-/ready", func(w http.ResponseWriter, _ *http.Request) {
		if ds.ready.Load() {
			w.WriteHeader(http.StatusOK)
		} else {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
	if ds.metricsHandler != nil {
		router.Handle("/metrics", ds.metricsHandler)
	}
	if ds.config != nil && ds.config.EnablePprof {
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	}
	return router
}

// Serve launches the diagnostics web server as part of a program.Group,
// if one is configured. The server is shut down once the context
// associated with the group is canceled.
func (ds *DiagnosticsServer) Serve(group program.Group) {
	if ds.config == nil || ds.config.ListenAddress == "" {
		return
	}
	server := &http.Server{
		Addr:    ds.config.ListenAddress,
		Handler: ds.Handler(),
	}
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		<-ctx.Done()
		ds.SetNotServing()
		return server.Close()
	})
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return util.StatusWrap(err, "Diagnostics server")
		}
		return nil
	})
}

// SetReady updates the health probe to report healthy and ready.
func (ds *DiagnosticsServer) SetReady() {
	ds.ready.Store(true)
}

// SetNotServing updates the health probe to report healthy but not ready.
func (ds *DiagnosticsServer) SetNotServing() {
	ds.ready.Store(false)
}
