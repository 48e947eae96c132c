package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tarot/internal/util"
	"tarot/pkg/tarot"
)

// Config provides configuration for the tarot command
type Config struct {
	loaded      bool
	Players     int   `yaml:"players"`
	Random      bool  `yaml:"random"`
	Auto        bool  `yaml:"auto"`
	Quiet       bool  `yaml:"quiet"`
	Verbose     bool  `yaml:"verbose"`
	NoSlam      bool  `yaml:"noSlam" envconfig:"no_slam"`
	Deals       int   `yaml:"deals"`
	MaxRedeals  int   `yaml:"maxRedeals" envconfig:"max_redeals"`
	Games       int   `yaml:"games"`
	Concurrency int   `yaml:"concurrency"`
	Seed        int64 `yaml:"seed"`
	Log         struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() Config {
	cfg := Config{
		Players:     4,
		Auto:        true,
		Deals:       1,
		MaxRedeals:  tarot.DefaultOptions().MaxRedeals,
		Concurrency: 4,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing file is not an error, the defaults are used.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("TAROT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("tarot", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Options returns the options of the engine
func (c Config) Options() (tarot.Options, error) {
	mode, err := tarot.ModeFromPlayers(c.Players)
	if err != nil {
		return tarot.Options{}, err
	}

	opts := tarot.DefaultOptions()
	opts.Mode = mode
	opts.NoSlam = c.NoSlam
	if c.Deals > 0 {
		opts.Deals = c.Deals
	}
	if c.MaxRedeals > 0 {
		opts.MaxRedeals = c.MaxRedeals
	}

	return opts, nil
}
