package prometheus_test

import (
	"regexp"
	"testing"

	"github.com/buildbarn/bb-capped-set/pkg/prometheus"
	"github.com/buildbarn/bb-capped-set/pkg/testutil"
	prometheus_client "github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func TestNameFilteringGatherer(t *testing.T) {
	goroutines := &io_prometheus_client.MetricFamily{
		Name: proto.String("go_goroutines"),
		Help: proto.String("Number of goroutines that currently exist."),
		Type: io_prometheus_client.MetricType_GAUGE.Enum(),
		Metric: []*io_prometheus_client.Metric{{
			Gauge: &io_prometheus_client.Gauge{
				Value: proto.Float64(8.0),
			},
		}},
	}
	evictions := &io_prometheus_client.MetricFamily{
		Name: proto.String("buildbarn_capped_set_evictions_total"),
		Help: proto.String("Total number of entries evicted from capped sets to make room for new entries."),
		Type: io_prometheus_client.MetricType_COUNTER.Enum(),
		Metric: []*io_prometheus_client.Metric{{
			Label: []*io_prometheus_client.LabelPair{{
				Name:  proto.String("name"),
				Value: proto.String("default"),
			}},
			Counter: &io_prometheus_client.Counter{
				Value: proto.Float64(42.0),
			},
		}},
	}

	t.Run("Success", func(t *testing.T) {
		gatherer := prometheus.NewNameFilteringGatherer(
			prometheus_client.GathererFunc(func() ([]*io_prometheus_client.MetricFamily, error) {
				return []*io_prometheus_client.MetricFamily{goroutines, evictions}, nil
			}),
			regexp.MustCompile("^buildbarn_capped_set_"))

		families, err := gatherer.Gather()
		require.NoError(t, err)
		require.Len(t, families, 1)
		require.True(t, proto.Equal(evictions, families[0]))
	})

	t.Run("PartialFailure", func(t *testing.T) {
		gatherer := prometheus.NewNameFilteringGatherer(
			prometheus_client.GathererFunc(func() ([]*io_prometheus_client.MetricFamily, error) {
				return []*io_prometheus_client.MetricFamily{goroutines, evictions}, status.Error(codes.Internal, "Collector failed")
			}),
			regexp.MustCompile("^go_"))

		families, err := gatherer.Gather()
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Collector failed"), err)
		require.Len(t, families, 1)
		require.True(t, proto.Equal(goroutines, families[0]))
	})
}
