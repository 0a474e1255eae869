// Package config provides gateway process configuration: backend service
// addresses, message bus URL, and the gateway listen address. Values come
// from a JSON file with environment variable overrides; the core components
// accept them as opaque configuration.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nats.go"

	"github.com/mealgrid/gateway/errors"
)

// Environment variable overrides. Each one, when set, takes precedence over
// the corresponding config file value.
const (
	EnvListenAddr     = "GATEWAY_LISTEN_ADDR"
	EnvOrderAddr      = "GATEWAY_ORDER_ADDR"
	EnvRestaurantAddr = "GATEWAY_RESTAURANT_ADDR"
	EnvBusURL         = "GATEWAY_BUS_URL"
)

// Backend holds the connection settings for one backend RPC service.
type Backend struct {
	// Addr is the host:port of the service's gRPC endpoint
	Addr string `json:"addr"`
}

// Bus holds the connection settings for the message bus.
type Bus struct {
	// URL is the NATS server URL
	URL string `json:"url"`
}

// Config is the complete gateway configuration.
type Config struct {
	// ListenAddr is the address the gateway HTTP server binds to
	ListenAddr string `json:"listen_addr"`

	// OrderService is the Order backend endpoint
	OrderService Backend `json:"order_service"`

	// RestaurantService is the Restaurant backend endpoint
	RestaurantService Backend `json:"restaurant_service"`

	// Bus is the domain event bus endpoint
	Bus Bus `json:"bus"`
}

// Default returns the default gateway configuration. The backend ports
// mirror the standard deployment layout; every value is overridable.
func Default() Config {
	return Config{
		ListenAddr:        ":3001",
		OrderService:      Backend{Addr: "localhost:50054"},
		RestaurantService: Backend{Addr: "localhost:50053"},
		Bus:               Bus{URL: nats.DefaultURL},
	}
}

// Validate ensures the configuration is complete.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"listen_addr cannot be empty")
	}
	if c.OrderService.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"order_service.addr cannot be empty")
	}
	if c.RestaurantService.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"restaurant_service.addr cannot be empty")
	}
	if c.Bus.URL == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"bus.url cannot be empty")
	}
	return nil
}

// ApplyEnv overlays environment variable overrides onto the configuration.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(EnvOrderAddr); v != "" {
		c.OrderService.Addr = v
	}
	if v := os.Getenv(EnvRestaurantAddr); v != "" {
		c.RestaurantService.Addr = v
	}
	if v := os.Getenv(EnvBusURL); v != "" {
		c.Bus.URL = v
	}
}

// Loader reads gateway configuration files.
type Loader struct{}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile loads configuration from a JSON file, starting from defaults.
// A missing path returns the defaults unchanged so the gateway can start
// from environment overrides alone.
func (l *Loader) LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "open config file")
	}
	defer f.Close()

	return l.load(f, cfg)
}

// Load reads configuration from r, starting from defaults.
func (l *Loader) Load(r io.Reader) (*Config, error) {
	return l.load(r, Default())
}

func (l *Loader) load(r io.Reader, cfg Config) (*Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "load",
			fmt.Sprintf("decode config: %v", err))
	}
	return &cfg, nil
}
