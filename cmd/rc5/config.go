package main

import (
	"github.com/spf13/viper"

	"rc5-go/pkg/rc5"
)

// Config carries the defaults the CLI applies when flags are not given.
// Precedence: command-line flags, then environment (RC5_*), then the config
// file, then DefaultConfig.
type Config struct {
	WordBits int    `mapstructure:"word_size"`
	Rounds   int    `mapstructure:"rounds"`
	Key      string `mapstructure:"key"`
	Verbose  bool   `mapstructure:"verbose"`
}

func DefaultConfig() *Config {
	p := rc5.DefaultParams()
	return &Config{
		WordBits: p.WordBits,
		Rounds:   p.Rounds,
	}
}

// LoadConfig loads configuration from file and environment. An explicit path
// must exist; with no path the usual locations are searched and a missing
// file is fine.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rc5")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rc5-go")
	}
	v.SetEnvPrefix("RC5")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, err
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
