package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plotterkit/glyphroute/route"
)

// Config is the optional YAML settings file accepted by --config. Explicit
// flags always win over file values; file values win over defaults.
//
// Example:
//
//	probes: 8
//	workers: 4
type Config struct {
	Probes  int `yaml:"probes"`
	Workers int `yaml:"workers"`
}

// LoadConfig reads and decodes a YAML config file. Unknown keys are
// rejected so typos surface instead of silently meaning defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// resolveOptions merges defaults, config file and explicit flags into the
// route options, in that precedence order.
func resolveOptions(cfg Config, probesFlag, workersFlag int, probesSet, workersSet bool) route.Options {
	opts := route.DefaultOptions()
	if cfg.Probes > 0 {
		opts.Probes = cfg.Probes
	}
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	if probesSet {
		opts.Probes = probesFlag
	}
	if workersSet {
		opts.Workers = workersFlag
	}

	return opts
}
