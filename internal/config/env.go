package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envOverrides are the environment variables that take precedence over the
// config file. Unset variables leave the file value in place.
type envOverrides struct {
	EnvironmentID  string `envconfig:"KONTENT_ENVIRONMENT_ID"`
	APIKey         string `envconfig:"KONTENT_API_KEY"`
	ManageAPIURL   string `envconfig:"KONTENT_MANAGE_API_URL"`
	DeliveryAPIURL string `envconfig:"KONTENT_DELIVERY_API_URL"`
	Transport      string `envconfig:"KONTENT_MCP_TRANSPORT"`
	Port           int    `envconfig:"PORT"`
	LogLevel       string `envconfig:"KONTENT_MCP_LOG_LEVEL"`
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	setIfNotEmpty(&cfg.Kontent.EnvironmentID, env.EnvironmentID)
	setIfNotEmpty(&cfg.Kontent.APIKey, env.APIKey)
	setIfNotEmpty(&cfg.Kontent.ManageAPIURL, env.ManageAPIURL)
	setIfNotEmpty(&cfg.Kontent.DeliveryAPIURL, env.DeliveryAPIURL)
	setIfNotEmpty(&cfg.Server.Transport, env.Transport)
	setIfNotEmpty(&cfg.Log.Level, env.LogLevel)
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
