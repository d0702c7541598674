package metrics

// DefaultAddress is the listen address used when none is configured.
const DefaultAddress = ":9090"

// Config defines the configuration for the metrics endpoint.
type Config struct {
	// Address is the network address the metrics HTTP server listens on.
	//
	// Example values:
	//   - ":9090"          → all interfaces, port 9090
	//   - "127.0.0.1:9090" → localhost only
	//   - nil (or omitted) → DefaultAddress
	//
	// Point it at an empty string to disable the endpoint entirely while
	// keeping the registry usable in-process:
	//   Address: metrics.Ptr(""),
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached to every metric as a constant service label,
	// distinguishing instrumented applications that share a scrape target.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// Ptr returns a pointer to the given string value. Helper for disabling the
// endpoint in configuration.
func Ptr(s string) *string {
	return &s
}
