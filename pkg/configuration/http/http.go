// Package http contains the configuration messages of HTTP servers.
package http

// ServerConfiguration of a single HTTP server, which may listen on
// multiple addresses.
type ServerConfiguration struct {
	// Network addresses on which to listen, e.g. ":7982".
	ListenAddresses []string `json:"listenAddresses,omitempty"`

	// Maximum amount of time to wait for in-flight requests to
	// complete upon shutdown, e.g. "5s". Defaults to no grace period.
	ShutdownGracePeriod string `json:"shutdownGracePeriod,omitempty"`
}
