// Package config defines the configuration schema for kontentmcp.
//
// JSON keys use camelCase. A file named *.yaml or *.yml is read as YAML with
// the same keys.
package config

import (
	"github.com/kontentmcp/kontentmcp/internal/config/kontent"
	"github.com/kontentmcp/kontentmcp/internal/config/response"
	"github.com/kontentmcp/kontentmcp/internal/config/server"
	"github.com/kontentmcp/kontentmcp/internal/config/tool"
)

// LogConfig controls the process logger. Logs always go to stderr.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // text or json
}

func defaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: "text"}
}

// Config is the root configuration object, loaded from ~/.kontentmcp/config.json.
type Config struct {
	Kontent  kontent.KontentConfig   `json:"kontent" yaml:"kontent"`
	Server   server.ServerConfig     `json:"server" yaml:"server"`
	Response response.ResponseConfig `json:"response" yaml:"response"`
	Tools    tool.ToolsConfig        `json:"tools" yaml:"tools"`
	Log      LogConfig               `json:"log" yaml:"log"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Kontent:  kontent.DefaultKontentConfig(),
		Server:   server.DefaultServerConfig(),
		Response: response.DefaultResponseConfig(),
		Tools:    tool.DefaultToolConfigs(),
		Log:      defaultLogConfig(),
	}
}

// ToolEnabled reports whether name is not listed in tools.disabled.
func (c *Config) ToolEnabled(name string) bool {
	for _, d := range c.Tools.Disabled {
		if d == name {
			return false
		}
	}
	return true
}
