package config

import "github.com/rs/zerolog"

// GetDefaultProjectConfig obtains a default configuration for the solrepl CLI.
func GetDefaultProjectConfig() *ProjectConfig {
	// Create a project configuration
	projectConfig := &ProjectConfig{
		SolcVersion:    "",
		CacheDirectory: "",
		Logging: LoggingConfig{
			Level:                zerolog.InfoLevel,
			EnableConsoleLogging: true,
		},
	}

	// Return the project configuration
	return projectConfig
}
