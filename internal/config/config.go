package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server    Server   `mapstructure:"server"`
	Database  Database `mapstructure:"database"`
	Writer    Writer   `mapstructure:"writer"`
	Crawler   Crawler  `mapstructure:"crawler"`
	LogLevel  string   `mapstructure:"log_level" default:"info"`
	LogFormat string   `mapstructure:"log_format" default:"console"`
}

type Server struct {
	// Mode is "dev" or "prod".
	Mode string `mapstructure:"mode" default:"dev"`
	Port int    `mapstructure:"port" default:"8000"`
}

type Database struct {
	// Path of the DuckDB file, ":memory:" for an in-memory database.
	Path string `mapstructure:"path" default:"graph.db"`
}

type Writer struct {
	QueueCapacity int           `mapstructure:"queue_capacity" default:"10000"`
	PollInterval  time.Duration `mapstructure:"poll_interval" default:"5ms"`
}

type Crawler struct {
	NumWorkers int           `mapstructure:"num_workers" default:"3"`
	Throttle   time.Duration `mapstructure:"throttle" default:"0s"`
	MaxDepth   int           `mapstructure:"max_depth" default:"0"`
	// Labels restricts the crawl to nodes carrying one of these labels.
	// Empty means every node matches.
	Labels []string `mapstructure:"labels"`
}

// Load reads the configuration from the optional file at path, layered over
// environment variables (GRAPH_CRAWLER_ prefix) and defaults.
func Load(path string) (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set configuration defaults: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("GRAPH_CRAWLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
