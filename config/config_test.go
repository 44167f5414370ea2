package config

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestDefaultProjectConfigValidates will test that the default project configuration passes validation.
func TestDefaultProjectConfigValidates(t *testing.T) {
	projectConfig := GetDefaultProjectConfig()
	assert.NoError(t, projectConfig.Validate())
	assert.EqualValues(t, zerolog.InfoLevel, projectConfig.Logging.Level)
}

// TestReadWriteRoundTrip will test that a configuration written to disk reads back identically.
func TestReadWriteRoundTrip(t *testing.T) {
	projectConfig := GetDefaultProjectConfig()
	projectConfig.SolcVersion = "0.8.19"
	projectConfig.CacheDirectory = "/tmp/solrepl-cache"

	// Write the config and read it back.
	path := filepath.Join(t.TempDir(), "solrepl.json")
	assert.NoError(t, projectConfig.WriteToFile(path))
	loaded, err := ReadProjectConfigFromFile(path)
	assert.NoError(t, err)
	assert.EqualValues(t, projectConfig, loaded)
}

// TestValidateSolcVersion will test that validation rejects a malformed pinned solc version.
func TestValidateSolcVersion(t *testing.T) {
	projectConfig := GetDefaultProjectConfig()
	projectConfig.SolcVersion = "not-a-version"
	assert.Error(t, projectConfig.Validate())

	projectConfig.SolcVersion = "0.8.17"
	assert.NoError(t, projectConfig.Validate())
}

// TestReadMissingConfig will test that reading a nonexistent configuration file fails.
func TestReadMissingConfig(t *testing.T) {
	_, err := ReadProjectConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
