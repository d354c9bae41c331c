package server

// Transports accepted by ServerConfig.Transport.
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "shttp"
)

// ServerConfig holds MCP server settings. Host, Port and AllowedOrigins only
// apply to the HTTP transports.
type ServerConfig struct {
	Transport      string   `json:"transport" yaml:"transport"`
	Host           string   `json:"host" yaml:"host"`
	Port           int      `json:"port" yaml:"port"`
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Transport:      TransportStdio,
		Host:           "0.0.0.0",
		Port:           3001,
		AllowedOrigins: []string{"*"},
	}
}
