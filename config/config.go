package config

import (
	"fmt"
	"reversi/agent"
	"reversi/meta"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Games     int      `mapstructure:"GAMES"`
	Workers   int      `mapstructure:"WORKERS"`
	Seed      uint64   `mapstructure:"SEED"` // 0 seeds from the clock
	Verbose   bool     `mapstructure:"VERBOSE"`
	OutputDir string   `mapstructure:"OUTPUT_DIR"` // Empty disables CSV results
	Bots      []string `mapstructure:"BOTS"`
}

// Setup reads cfgPath, if given, on top of the defaults. REVERSI_* environment
// variables override both.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("games", meta.NUM_OF_GAMES)
	v.SetDefault("workers", meta.GO_ROUTINES)
	v.SetDefault("seed", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("output_dir", meta.OUTPUT_DIR)
	v.SetDefault("bots", agent.Names())

	v.SetEnvPrefix("REVERSI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	return &cfg, nil
}
