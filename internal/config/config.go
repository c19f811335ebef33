// Package config defines the dashboard configuration and its loader.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers a .env file, an optional YAML file and DJTOUR_ env vars on top.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFile is the CSV event table loaded once at startup.
	DataFile string `koanf:"data_file"`

	// TopN is the default number of entities in the "top touring" chart.
	TopN int `koanf:"top_n"`

	// MaxTopN caps the ?top= query parameter.
	MaxTopN int `koanf:"max_top_n"`

	// MinMarkerSize and MaxMarkerSize bound tour map markers in pixels.
	MinMarkerSize float64 `koanf:"min_marker_size"`
	MaxMarkerSize float64 `koanf:"max_marker_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		DataFile:      "data/dj_events.csv",
		TopN:          10,
		MaxTopN:       100,
		MinMarkerSize: 4,
		MaxMarkerSize: 40,
	}
}
