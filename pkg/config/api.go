package config

import "time"

// APIConfig contains the operational HTTP server settings for serve mode.
type APIConfig struct {
	// ListenAddr in host:port form; host may be empty.
	ListenAddr string `yaml:"listen_addr"`

	// ShutdownTimeout bounds graceful HTTP drain on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		ListenAddr:      ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// TelemetryConfig controls the OpenTelemetry metrics pipeline.
type TelemetryConfig struct {
	// Enabled turns instrumentation on. SNI_TELEMETRY=1 also enables it.
	Enabled bool `yaml:"enabled"`

	// Exporter is "stdout" or "otlp".
	Exporter string `yaml:"exporter"`

	// OTLPEndpoint is the collector endpoint for the otlp exporter
	// (host:port, no scheme).
	OTLPEndpoint string `yaml:"otlp_endpoint"`

	// Interval between metric exports.
	Interval time.Duration `yaml:"interval"`
}

// DefaultTelemetryConfig returns the built-in telemetry defaults.
func DefaultTelemetryConfig() *TelemetryConfig {
	return &TelemetryConfig{
		Enabled:  false,
		Exporter: "stdout",
		Interval: 30 * time.Second,
	}
}
