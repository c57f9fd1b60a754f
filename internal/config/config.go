// Package config provides YAML configuration file loading and validation.
// The tool ships with compiled-in defaults (server list, intervals, worker
// bound) so it runs with no configuration at all; a YAML file overrides
// whichever fields it sets.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Servers  []string `yaml:"servers"`  // NTP server hostnames, in display-tiebreak order
	Defaults Defaults `yaml:"defaults"` // Polling settings applied to every server
}

// Defaults contains polling settings that apply to all servers.
type Defaults struct {
	Interval time.Duration `yaml:"interval"` // Dashboard refresh interval (e.g. "5s")
	Timeout  time.Duration `yaml:"timeout"`  // Per-request NTP query timeout (e.g. "2s")
	Workers  int           `yaml:"workers"`  // Max concurrent NTP queries per cycle
}

// UnmarshalYAML accepts durations in time.ParseDuration notation ("5s",
// "1500ms"). Fields absent from the document keep their current value, so
// partial overrides of the compiled-in defaults work.
func (d *Defaults) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval string `yaml:"interval"`
		Timeout  string `yaml:"timeout"`
		Workers  *int   `yaml:"workers"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval != "" {
		parsed, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", raw.Interval, err)
		}
		d.Interval = parsed
	}
	if raw.Timeout != "" {
		parsed, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		d.Timeout = parsed
	}
	if raw.Workers != nil {
		d.Workers = *raw.Workers
	}
	return nil
}

// defaultServers is the compiled-in server list, queried when no config
// file names its own.
var defaultServers = []string{
	"pool.ntp.org", "time.google.com", "time.cloudflare.com", "time.apple.com",
	"time.windows.com", "time.nist.gov", "ntp.ubuntu.com", "amazon.pool.ntp.org",
	"time.facebook.com", "ntp1.hetzner.de", "ntp.ripe.net", "ptbtime1.ptb.de",
	"ntp.se", "time.fu-berlin.de", "ntp.tuxfamily.net",
}

// Default returns the compiled-in configuration.
func Default() *Config {
	servers := make([]string, len(defaultServers))
	copy(servers, defaultServers)
	return &Config{
		Servers: servers,
		Defaults: Defaults{
			Interval: 5 * time.Second,
			Timeout:  2 * time.Second,
			Workers:  20,
		},
	}
}

// Validate validates the configuration. It may emit warnings (to stderr)
// for suspicious values but does not fail on warnings.
func (c *Config) Validate() error {
	if len(c.Servers) == 0 {
		return fmt.Errorf("at least one server is required")
	}
	seen := make(map[string]bool, len(c.Servers))
	for _, s := range c.Servers {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("server hostnames must be non-empty")
		}
		if seen[s] {
			return fmt.Errorf("server %s listed more than once", s)
		}
		seen[s] = true
	}
	if c.Defaults.Interval <= 0 {
		return fmt.Errorf("defaults.interval must be > 0")
	}
	if c.Defaults.Timeout <= 0 {
		return fmt.Errorf("defaults.timeout must be > 0")
	}
	if c.Defaults.Workers <= 0 {
		return fmt.Errorf("defaults.workers must be > 0")
	}

	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if c.Defaults.Timeout < low {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very low (%s); queries may fail under normal network jitter\n", c.Defaults.Timeout)
	}
	if c.Defaults.Timeout > high {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very high (%s); failed servers will stall each cycle for that long\n", c.Defaults.Timeout)
	}
	if c.Defaults.Interval < c.Defaults.Timeout {
		fmt.Fprintf(os.Stderr, "Warning: interval (%s) is shorter than timeout (%s); cycles may overlap their schedule\n", c.Defaults.Interval, c.Defaults.Timeout)
	}

	return nil
}

// Load returns the configuration to run with. An empty path means "use the
// compiled-in defaults". A non-empty path is read, environment-expanded
// (hostnames can use ${VAR} syntax), parsed over the defaults, and
// validated — a file only has to name the fields it wants to change.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	// Unmarshal on top of the defaults; absent fields keep their default.
	// A file that names `servers:` replaces the whole list.
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnv reads environment variables from a .env file in the current
// working directory and sets them with os.Setenv. A missing .env is not an
// error; system environment variables still apply.
//
// File format: KEY=VALUE per line, # comments, optional single or double
// quotes around values.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
			os.Setenv(key, value)
		}
	}
}
