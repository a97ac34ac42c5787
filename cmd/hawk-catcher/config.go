package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	hawk "github.com/hawk-tracker/catcher-go"
)

// config is the CLI configuration: the catcher settings plus flags that
// only make sense for the standalone tool.
type config struct {
	hawk.Settings `mapstructure:",squash"`

	Verbose       bool   `mapstructure:"verbose"`
	MetricsListen string `mapstructure:"metrics_listen"`
}

func loadConfig() (*config, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath("/etc/hawk-catcher/")
	cfg.AddConfigPath(".")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg.SetConfigFile(path)
	}

	cfg.SetEnvPrefix("hawk")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		// The token can come entirely from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var c config
	if err := cfg.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Token == "" {
		c.Token = cfg.GetString("token")
	}
	if c.Token == "" {
		return nil, hawk.ErrMissingToken
	}

	return &c, nil
}
