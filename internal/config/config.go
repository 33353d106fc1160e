package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries process-level settings. Values come from defaults, then an
// optional gutlog.yaml in the working directory, then environment variables
// (GUTLOG_PORT, GUTLOG_DB_PATH, GUTLOG_TIMEZONE).
type Config struct {
	Port     string
	DBPath   string
	Timezone string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("db_path", filepath.Join("data", "gutlog.db"))
	v.SetDefault("timezone", "UTC")

	v.SetConfigName("gutlog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("gutlog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; env vars and defaults apply.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Port:     v.GetString("port"),
		DBPath:   v.GetString("db_path"),
		Timezone: v.GetString("timezone"),
	}, nil
}
