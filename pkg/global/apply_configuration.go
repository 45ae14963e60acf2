package global

import (
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"runtime"

	pb "github.com/buildbarn/bb-capped-set/pkg/configuration/global"
	bb_prometheus "github.com/buildbarn/bb-capped-set/pkg/prometheus"
	"github.com/buildbarn/bb-capped-set/pkg/util"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ApplyConfiguration applies configuration options to the running
// process. These configuration options are global, in that they apply
// to all binaries, regardless of their purpose.
//
// The DiagnosticsServer that is returned should be launched by the
// caller, and marked ready once the program has started successfully.
func ApplyConfiguration(configuration *pb.Configuration) (*DiagnosticsServer, error) {
	if configuration == nil {
		configuration = &pb.Configuration{}
	}

	// Logging.
	logWriters := append(make([]io.Writer, 0, len(configuration.LogPaths)+1), os.Stderr)
	for _, logPath := range configuration.LogPaths {
		w, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to open log path %#v", logPath)
		}
		logWriters = append(logWriters, w)
	}
	log.SetOutput(io.MultiWriter(logWriters...))

	// Perform tracing using OpenTelemetry.
	if tracingConfiguration := configuration.Tracing; tracingConfiguration != nil {
		tracerProvider, err := newTracerProviderFromConfiguration(tracingConfiguration)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create tracer provider")
		}
		otel.SetTracerProvider(tracerProvider)

		// Construct a propagator which supports both the context
		// and Zipkin B3 propagation standards.
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
		))
	}

	// Enable mutex profiling.
	runtime.SetMutexProfileFraction(int(configuration.MutexProfileFraction))

	// Metrics may be limited to a subset of names.
	var metricsHandler http.Handler
	diagnosticsConfiguration := configuration.DiagnosticsHTTPServer
	if diagnosticsConfiguration != nil && diagnosticsConfiguration.EnablePrometheus {
		if pattern := diagnosticsConfiguration.MetricsNamePattern; pattern != "" {
			namePattern, err := regexp.Compile(pattern)
			if err != nil {
				return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid metrics name pattern")
			}
			metricsHandler = promhttp.HandlerFor(
				bb_prometheus.NewNameFilteringGatherer(prometheus.DefaultGatherer, namePattern),
				promhttp.HandlerOpts{})
		} else {
			metricsHandler = promhttp.Handler()
		}
	}

	return &DiagnosticsServer{
		config:         diagnosticsConfiguration,
		metricsHandler: metricsHandler,
	}, nil
}

const serviceInstanceIDKey = "service.instance.id"

func newTracerProviderFromConfiguration(configuration *pb.TracingConfiguration) (*sdktrace.TracerProvider, error) {
	var tracerProviderOptions []sdktrace.TracerProviderOption

	if endpoint := configuration.JaegerCollectorEndpoint; endpoint != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create Jaeger collector span exporter")
		}
		tracerProviderOptions = append(tracerProviderOptions, sdktrace.WithBatcher(exporter))
	}

	// Set resource attributes, so that this process can be
	// identified uniquely.
	resourceAttributes := make([]attribute.KeyValue, 0, len(configuration.ResourceAttributes)+1)
	for key, value := range configuration.ResourceAttributes {
		resourceAttributes = append(resourceAttributes, attribute.String(key, value))
	}
	if _, ok := configuration.ResourceAttributes[serviceInstanceIDKey]; !ok {
		resourceAttributes = append(resourceAttributes, attribute.String(serviceInstanceIDKey, uuid.New().String()))
	}
	tracerProviderOptions = append(
		tracerProviderOptions,
		sdktrace.WithResource(resource.NewSchemaless(resourceAttributes...)))

	// Traces that have a sampled parent are always sampled. Other
	// traces are sampled according to the ratio.
	ratio := configuration.SamplingRatio
	if ratio < 0 || ratio > 1 {
		return nil, status.Errorf(codes.InvalidArgument, "Sampling ratio %g is not in range [0.0, 1.0]", ratio)
	}
	tracerProviderOptions = append(
		tracerProviderOptions,
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))))

	return sdktrace.NewTracerProvider(tracerProviderOptions...), nil
}
