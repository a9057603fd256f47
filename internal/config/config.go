package config

import "github.com/spf13/viper"

// Config holds runtime configuration for a scribe invocation.
// Values are populated from .scribe.yaml, SCRIBE_* env vars, and CLI flags.
type Config struct {
	OutDir    string `mapstructure:"out_dir"`
	Strict    bool   `mapstructure:"strict"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("out_dir", "_build")
	viper.SetDefault("strict", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_format", "text")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
