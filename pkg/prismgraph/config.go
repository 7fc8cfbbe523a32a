package prismgraph

import (
	"fmt"
	"os"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/compiler"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of Options.
//
//	engine: expr
//	concurrency: 4
//	limits:
//	  plot:
//	    default_min: -20
//	    max_samples: 1500
//	  surface:
//	    default_resolution: 50
type Config struct {
	Engine      compiler.Engine `yaml:"engine"`
	Concurrency int             `yaml:"concurrency"`
	Limits      Limits          `yaml:"limits"`
}

// DefaultConfig returns the configuration matching DefaultOptions.
func DefaultConfig() Config {
	return Config{
		Engine: compiler.EngineGovaluate,
		Limits: DefaultLimits(),
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := compiler.New(cfg.Engine); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Options converts the config to Options.
func (c Config) Options() Options {
	return Options{
		Engine:      c.Engine,
		Limits:      c.Limits,
		Concurrency: c.Concurrency,
	}
}
