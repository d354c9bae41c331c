package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontentmcp/kontentmcp/internal/config/tool"
)

func toolProbe(url string) tool.MCPServerConfig {
	return tool.MCPServerConfig{URL: url}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("KONTENT_ENVIRONMENT_ID", "env-from-env")
	t.Setenv("KONTENT_API_KEY", "key-from-env")
	t.Setenv("KONTENT_MANAGE_API_URL", "https://manage.example.test/")
	t.Setenv("PORT", "8080")
	t.Setenv("KONTENT_MCP_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.Kontent.EnvironmentID = "env-from-file"
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, "env-from-env", cfg.Kontent.EnvironmentID)
	assert.Equal(t, "key-from-env", cfg.Kontent.APIKey)
	assert.Equal(t, "https://manage.example.test/", cfg.Kontent.ManageAPIURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv_UnsetKeepsFile(t *testing.T) {
	for _, k := range []string{"KONTENT_ENVIRONMENT_ID", "PORT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg := DefaultConfig()
	cfg.Kontent.EnvironmentID = "env-from-file"
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, "env-from-file", cfg.Kontent.EnvironmentID)
	assert.Equal(t, 3001, cfg.Server.Port)
}

func TestApplyEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := DefaultConfig()
	assert.Error(t, ApplyEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KONTENT_MCP_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Setenv("KONTENT_MCP_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("KONTENT_MCP_TEST_VALUE"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, "from-dotenv", os.Getenv("KONTENT_MCP_TEST_VALUE"))
}
