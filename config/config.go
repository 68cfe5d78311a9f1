package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"mlfq-sim/internal/schedulers"
)

// QueueConfig is one ladder level of a custom scheme. Demote defaults to the
// policy's own behaviour when omitted.
type QueueConfig struct {
	Policy  string `mapstructure:"policy"`
	Quantum int    `mapstructure:"quantum"`
	Demote  *bool  `mapstructure:"demote"`
	Rotate  bool   `mapstructure:"rotate"`
}

type SchemeConfig struct {
	ID     int           `mapstructure:"id"`
	Queues []QueueConfig `mapstructure:"queues"`
}

type SchedulerConfig struct {
	Port          int            `mapstructure:"port"`
	LogLevel      string         `mapstructure:"log_level"`
	Input         string         `mapstructure:"input"`
	OutputDir     string         `mapstructure:"output_dir"`
	Schemes       []int          `mapstructure:"schemes"`
	CustomSchemes []SchemeConfig `mapstructure:"custom_schemes"`
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and returns the shared config.
// A missing file yields the defaults; a broken one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("")
		if err != nil {
			logrus.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads the config file at path, or config.yaml in the
// working directory when path is empty. Values can be overridden from the
// environment with the MLFQ_ prefix, e.g. MLFQ_PORT.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("input", "mlfq001.txt")
	v.SetDefault("output_dir", ".")
	v.SetDefault("schemes", []int{1, 2, 3})

	v.SetEnvPrefix("MLFQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debugf("no config file found, using defaults")
	}

	cfg := &SchedulerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Registry returns the built-in schemes plus the custom ones from the config.
func (c *SchedulerConfig) Registry() (*schedulers.Registry, error) {
	registry := schedulers.NewRegistry()
	for _, sc := range c.CustomSchemes {
		scheme, err := sc.toScheme()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(scheme); err != nil {
			return nil, err
		}
		logrus.Debugf("registered custom %s", scheme)
	}
	return registry, nil
}

func (sc SchemeConfig) toScheme() (schedulers.Scheme, error) {
	queues := make([]schedulers.QueueSpec, len(sc.Queues))
	for i, qc := range sc.Queues {
		kind, err := schedulers.ParsePolicyKind(qc.Policy)
		if err != nil {
			return schedulers.Scheme{}, fmt.Errorf("scheme %d queue %d: %w", sc.ID, i+1, err)
		}
		spec := schedulers.NewQueueSpec(kind, qc.Quantum)
		if qc.Demote != nil {
			spec.Demote = *qc.Demote
		}
		spec.Rotate = qc.Rotate
		queues[i] = spec
	}
	return schedulers.Scheme{ID: sc.ID, Queues: queues}, nil
}
