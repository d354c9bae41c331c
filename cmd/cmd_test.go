package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontentmcp/kontentmcp/internal/config"
	toolcfg "github.com/kontentmcp/kontentmcp/internal/config/tool"
)

func TestProbeTarget(t *testing.T) {
	targets := map[string]toolcfg.MCPServerConfig{"local": {URL: "http://localhost:3001/mcp"}}

	name, cfg, err := probeTarget(targets, []string{"local"})
	require.NoError(t, err)
	assert.Equal(t, "local", name)
	assert.Equal(t, "http://localhost:3001/mcp", cfg.URL)

	_, _, err = probeTarget(targets, []string{"missing"})
	assert.Error(t, err)

	probeCommand, probeToken = "kontentmcp serve stdio", "k"
	t.Cleanup(func() { probeCommand, probeToken = "", "" })
	name, cfg, err = probeTarget(targets, nil)
	require.NoError(t, err)
	assert.Equal(t, "adhoc", name)
	assert.Equal(t, "kontentmcp", cfg.Command)
	assert.Equal(t, []string{"serve", "stdio"}, cfg.Args)
	assert.Equal(t, "Bearer k", cfg.Headers["Authorization"])
}

func TestProbeTarget_NeedsSomething(t *testing.T) {
	_, _, err := probeTarget(nil, nil)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	setupLogging(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestOnboard_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	configPath, onboardFromEnv = path, true
	t.Cleanup(func() { configPath, onboardFromEnv = "", false })
	t.Setenv("KONTENT_ENVIRONMENT_ID", "a5b6c7d8-0000-4000-8000-000000000001")
	t.Setenv("KONTENT_API_KEY", "secret")

	var out bytes.Buffer
	onboardCmd.SetOut(&out)
	require.NoError(t, runOnboard(onboardCmd, nil))
	assert.Contains(t, out.String(), "Created config at "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a5b6c7d8-0000-4000-8000-000000000001", cfg.Kontent.EnvironmentID)
	assert.Equal(t, "secret", cfg.Kontent.APIKey)

	out.Reset()
	require.NoError(t, runOnboard(onboardCmd, nil))
	assert.Contains(t, out.String(), "Refreshed config")
}
