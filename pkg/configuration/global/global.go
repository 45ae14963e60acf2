// Package global contains configuration options that apply to all
// binaries, regardless of their purpose.
package global

// DiagnosticsHTTPServerConfiguration controls the web server that
// exposes health checks, metrics and profiling endpoints.
type DiagnosticsHTTPServerConfiguration struct {
	ListenAddress    string `json:"listenAddress,omitempty"`
	EnablePrometheus bool   `json:"enablePrometheus,omitempty"`
	EnablePprof      bool   `json:"enablePprof,omitempty"`

	// Regular expression that names of metrics must match to be
	// exposed. All metrics are exposed if left empty.
	MetricsNamePattern string `json:"metricsNamePattern,omitempty"`
}

// TracingConfiguration controls the export of OpenTelemetry traces.
type TracingConfiguration struct {
	// URL of a Jaeger collector, e.g.
	// "http://jaeger:14268/api/traces". Traces are created, but not
	// exported if left empty.
	JaegerCollectorEndpoint string `json:"jaegerCollectorEndpoint,omitempty"`

	// Fraction of traces to sample, in range [0.0, 1.0].
	SamplingRatio float64 `json:"samplingRatio,omitempty"`

	// Attributes attached to the OpenTelemetry resource of this
	// process, such as "service.name".
	ResourceAttributes map[string]string `json:"resourceAttributes,omitempty"`
}

// Configuration options that apply to all binaries.
type Configuration struct {
	// Paths of files to which log output is appended, in addition
	// to stderr.
	LogPaths []string `json:"logPaths,omitempty"`

	// Fraction of mutex contention events that are reported, as
	// passed to runtime.SetMutexProfileFraction().
	MutexProfileFraction int32 `json:"mutexProfileFraction,omitempty"`

	DiagnosticsHTTPServer *DiagnosticsHTTPServerConfiguration `json:"diagnosticsHttpServer,omitempty"`
	Tracing               *TracingConfiguration               `json:"tracing,omitempty"`
}
