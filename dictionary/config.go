package dictionary

import "fmt"

// Config is a serialisable representation of the dictionary service
// settings. The zero value loads nothing and disables tracing.
type Config struct {
	// URL is the default dictionary location for Service.Load.
	URL     string        `json:"url,omitempty" yaml:"url,omitempty"`
	ZeroKey bool          `json:"zeroKey,omitempty" yaml:"zeroKey,omitempty"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// TracingConfig enables the stdout/file OpenTelemetry exporter when Service
// is set.
type TracingConfig struct {
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config with package defaults.
func DefaultConfig() *Config {
	return &Config{
		Tracing: TracingConfig{Version: "0.0.1"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Tracing.Output != "" && c.Tracing.Service == "" {
		return fmt.Errorf("tracing.service must be set when tracing.output is %q", c.Tracing.Output)
	}
	return nil
}
