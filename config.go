package flowstate

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/flowstate/service/gateway"
	"github.com/viant/flowstate/service/messaging"
	"github.com/viant/flowstate/service/meta"
)

// Config is a serialisable representation of the service configuration.
// It can be populated from YAML or JSON; the zero value is useful - all
// nested fields inherit their package defaults.
type Config struct {
	Gateway     gateway.Config    `json:"gateway" yaml:"gateway"`
	Events      EventsConfig      `json:"events" yaml:"events"`
	Definitions DefinitionsConfig `json:"definitions" yaml:"definitions"`
	Tracing     TracingConfig     `json:"tracing" yaml:"tracing"`
}

// EventsConfig selects the queue vendor behind the event service.
type EventsConfig struct {
	Vendor messaging.Vendor `json:"vendor" yaml:"vendor"`
}

// DefinitionsConfig controls definition preloading at startup.
type DefinitionsConfig struct {
	// BaseURL is resolved against by relative Preload entries
	BaseURL string `json:"baseURL" yaml:"baseURL"`

	// Preload lists definition documents registered before serving
	Preload []string `json:"preload" yaml:"preload"`
}

// TracingConfig controls OpenTelemetry initialisation.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with package defaults.
func DefaultConfig() *Config {
	return &Config{
		Gateway: gateway.DefaultConfig(),
		Events:  EventsConfig{Vendor: messaging.VendorMemory},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Events.Vendor {
	case "", messaging.VendorMemory, messaging.VendorFs:
	default:
		return fmt.Errorf("events.vendor must be memory or fs, got %s", c.Events.Vendor)
	}
	return nil
}

// LoadConfig reads configuration from the supplied URL, applying
// defaults for absent fields.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	config := DefaultConfig()
	if URL == "" {
		return config, nil
	}
	if err := meta.New(afs.New(), "").Load(ctx, URL, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
