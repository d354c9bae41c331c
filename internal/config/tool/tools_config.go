package tool

// ToolsConfig groups tool-level settings.
type ToolsConfig struct {
	// Disabled lists tool names that are not registered.
	Disabled []string `json:"disabled" yaml:"disabled"`
	// ValidateInput checks call arguments against the tool's input schema
	// before anything is sent to Kontent.ai.
	ValidateInput bool `json:"validateInput" yaml:"validateInput"`
	// SearchPollAttempts bounds polling of AI-assisted search results.
	SearchPollAttempts int `json:"searchPollAttempts" yaml:"searchPollAttempts"`
	// Probe names MCP servers the probe command can connect to.
	Probe map[string]MCPServerConfig `json:"probe" yaml:"probe"`
}

func DefaultToolConfigs() ToolsConfig {
	return ToolsConfig{
		Disabled:           []string{},
		ValidateInput:      true,
		SearchPollAttempts: 10,
		Probe:              map[string]MCPServerConfig{},
	}
}
