package main

import (
	"context"
	"log"
	"os"

	"github.com/buildbarn/bb-capped-set/pkg/address"
	"github.com/buildbarn/bb-capped-set/pkg/cappedset"
	"github.com/buildbarn/bb-capped-set/pkg/cappedset/httpservers"
	"github.com/buildbarn/bb-capped-set/pkg/configuration/bb_capped_set"
	"github.com/buildbarn/bb-capped-set/pkg/global"
	bb_http "github.com/buildbarn/bb-capped-set/pkg/http"
	"github.com/buildbarn/bb-capped-set/pkg/program"
	"github.com/buildbarn/bb-capped-set/pkg/util"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_capped_set bb_capped_set.jsonnet")
		}
		var configuration bb_capped_set.ApplicationConfiguration
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}
		diagnosticsServer, err := global.ApplyConfiguration(configuration.Global)
		if err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}
		diagnosticsServer.Serve(siblingsGroup)

		cappedSet, err := cappedset.NewCappedSetFromConfiguration[address.Address](configuration.CappedSet)
		if err != nil {
			return util.StatusWrap(err, "Failed to create capped set")
		}

		router := mux.NewRouter()
		httpservers.RegisterCappedSetServer(router, cappedSet, util.DefaultErrorLogger)
		bb_http.NewServersFromConfigurationAndServe(configuration.HTTPServers, gzhttp.GzipHandler(router), siblingsGroup)

		diagnosticsServer.SetReady()
		log.Printf("Serving capped set with capacity %d", cappedSet.Capacity())
		return nil
	})
}
