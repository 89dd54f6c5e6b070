package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noneChanged(string) bool { return false }

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, "text", c.Output)
	assert.Equal(t, "random", c.Strategy)
	assert.Equal(t, uint64(0), c.Seed)
	assert.False(t, c.Verbose)
	assert.Equal(t, ".env", c.EnvFile)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvStrategy, "random")

	c := DefaultConfig()
	require.NoError(t, c.ApplyEnv(noneChanged))
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, uint64(77), c.Seed)
	assert.True(t, c.Verbose)
}

func TestApplyEnvFlagsWin(t *testing.T) {
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvSeed, "77")

	c := DefaultConfig()
	c.Seed = 5
	require.NoError(t, c.ApplyEnv(func(flag string) bool { return flag == "seed" }))
	assert.Equal(t, uint64(5), c.Seed)
	assert.Equal(t, "json", c.Output)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	t.Setenv(EnvSeed, "minus one")
	assert.Error(t, DefaultConfig().ApplyEnv(noneChanged))

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvVerbose, "loud")
	assert.Error(t, DefaultConfig().ApplyEnv(noneChanged))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BATTLESHIP_SEED=4242\n"), 0600))
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)

	c := DefaultConfig()
	c.EnvFile = path
	require.NoError(t, c.LoadEnvFile(true))
	require.NoError(t, c.ApplyEnv(noneChanged))
	assert.Equal(t, uint64(4242), c.Seed)
}

func TestLoadEnvFileMissing(t *testing.T) {
	c := DefaultConfig()
	c.EnvFile = filepath.Join(t.TempDir(), "absent.env")

	assert.NoError(t, c.LoadEnvFile(false))
	assert.Error(t, c.LoadEnvFile(true))
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())

	c.Output = "yaml"
	assert.Error(t, c.Validate())
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()

	c.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())

	c.Verbose = true
	c.NewLogger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
