package response

// ResponseConfig controls how tool payloads are rendered.
type ResponseConfig struct {
	// Indent selects two-space indented JSON over compact JSON.
	Indent bool `json:"indent" yaml:"indent"`
	// EmptySentinels are string values treated as empty, like "".
	EmptySentinels []string `json:"emptySentinels" yaml:"emptySentinels"`
}

func DefaultResponseConfig() ResponseConfig {
	return ResponseConfig{EmptySentinels: []string{"<p><br/></p>"}}
}
