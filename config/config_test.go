package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasSpecDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, defaultPort, c.Port)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".scriptkit"), c.AppRoot)
	assert.False(t, c.DisableAudit)
	assert.False(t, c.ValidateArguments)
	assert.False(t, c.EnableSSE)
	assert.False(t, c.AuditAllMethods)
}

func TestResolvedPathsFallBackToAppRoot(t *testing.T) {
	c := New()
	c.AppRoot = "/tmp/sk"
	assert.Equal(t, "/tmp/sk/agent-token", c.ResolvedTokenPath())
	assert.Equal(t, "/tmp/sk/logs/mcp-audit.jsonl", c.ResolvedAuditLogPath())
	assert.Equal(t, "/tmp/sk/server.json", c.DiscoveryFilePath())
}

func TestResolvedTokenPathOverride(t *testing.T) {
	c := New()
	c.AppRoot = "/tmp/sk"
	c.TokenPath = "/etc/scriptkit/token"
	assert.Equal(t, "/etc/scriptkit/token", c.ResolvedTokenPath())
}

func TestLoadMergesYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9999\nvalidate_arguments: true\n"), 0o600))

	c := New()
	c.ConfigFile = path
	require.NoError(t, c.Load())

	assert.Equal(t, 9999, c.Port)
	assert.True(t, c.ValidateArguments)
	assert.False(t, c.DisableAudit)
}

func TestLoadWithNoConfigFileIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.Load())
	assert.Equal(t, defaultPort, c.Port)
}

func TestLoadMissingFileErrors(t *testing.T) {
	c := New()
	c.ConfigFile = "/nonexistent/bridge.yaml"
	assert.Error(t, c.Load())
}

func TestPreloadConfigFileThenFlagOverridesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9999\n"), 0o600))

	c := New()
	require.NoError(t, c.PreloadConfigFile([]string{"--config=" + path, "--port=7000"}))
	assert.Equal(t, 9999, c.Port) // preload alone has applied the file but not yet the flag

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--config=" + path, "--port=7000"}))
	assert.Equal(t, 7000, c.Port) // explicit flag wins over the file default
}

func TestPreloadConfigFileWithoutFlagKeepsFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9999\n"), 0o600))

	c := New()
	require.NoError(t, c.PreloadConfigFile([]string{"--config=" + path}))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--config=" + path}))
	assert.Equal(t, 9999, c.Port)
}

func TestRegisterFlagsOverridesDefaults(t *testing.T) {
	c := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--port=8080", "--enable-sse"}))
	assert.Equal(t, 8080, c.Port)
	assert.True(t, c.EnableSSE)
}
