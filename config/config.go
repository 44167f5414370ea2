package config

import (
	"encoding/json"
	"os"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ProjectConfig describes the configuration used by the solrepl CLI.
type ProjectConfig struct {
	// SolcVersion describes the solc version to pin new sessions to. If empty, the system-wide solc version
	// is queried, falling back to a default when no solc installation is available.
	SolcVersion string `json:"solcVersion"`

	// CacheDirectory describes the directory where session snapshots are stored. If empty, the default
	// per-user cache directory is used.
	CacheDirectory string `json:"cacheDirectory"`

	// Logging describes the configuration used for logging.
	Logging LoggingConfig `json:"loggingConfig"`
}

// LoggingConfig describes the configuration options used for logging.
type LoggingConfig struct {
	// Level describes whether logs of certain severity levels (eg info, warning, etc.) will be emitted or
	// discarded. Increasing level values represent more severe logs.
	Level zerolog.Level `json:"level"`

	// EnableConsoleLogging describes whether console logging is enabled.
	EnableConsoleLogging bool `json:"enableConsoleLogging"`
}

// ReadProjectConfigFromFile reads a JSON-serialized ProjectConfig from a provided file path.
// Returns the ProjectConfig if it succeeds, or an error if one occurs.
func ReadProjectConfigFromFile(path string) (*ProjectConfig, error) {
	// Read our project configuration file data
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Parse the project configuration on top of the defaults
	projectConfig := GetDefaultProjectConfig()
	err = json.Unmarshal(b, projectConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return projectConfig, nil
}

// WriteToFile writes the ProjectConfig to a provided file path in a JSON-serialized format.
// Returns an error if one occurs.
func (p *ProjectConfig) WriteToFile(path string) error {
	// Serialize the configuration
	b, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}

	// Save it to the provided output path and return the result
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Validate validates that the ProjectConfig meets certain requirements.
// Returns an error if one occurs.
func (p *ProjectConfig) Validate() error {
	// Verify that a pinned solc version, if provided, is a well-formed semantic version.
	if p.SolcVersion != "" {
		if _, err := semver.NewVersion(p.SolcVersion); err != nil {
			return errors.Errorf("malformed solc version '%s'", p.SolcVersion)
		}
	}
	return nil
}
