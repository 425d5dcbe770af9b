package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "mainnet", c.Chain.Network)
	assert.Equal(t, 8000, c.Web.API.Port)
	assert.Equal(t, "0.0.0.0", c.Web.API.Interface)
	assert.False(t, c.Logger.Debug)
}

func TestLoadWithoutFile(t *testing.T) {
	c, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.Nil(t, os.WriteFile(path, []byte(`
logger:
  debug: true
chain:
  network: testnet3
web:
  api:
    port: 9000
`), 0o600))
	c, err := Load(path)
	require.Nil(t, err)
	assert.True(t, c.Logger.Debug)
	assert.Equal(t, "testnet3", c.Chain.Network)
	assert.Equal(t, 9000, c.Web.API.Port)
	assert.Equal(t, "0.0.0.0", c.Web.API.Interface)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.NotNil(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "8123")
	t.Setenv("LOG_DEBUG", "1")
	c, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, 8123, c.Web.API.Port)
	assert.True(t, c.Logger.Debug)

	t.Setenv("API_PORT", "not a port")
	_, err = Load("")
	assert.NotNil(t, err)
}
