package cmd

import (
	"os"
	"path/filepath"

	"github.com/crytic/solrepl/cache"
	"github.com/crytic/solrepl/config"
	"github.com/crytic/solrepl/logging"
	"github.com/crytic/solrepl/parser"
	"github.com/crytic/solrepl/repl"
	"github.com/spf13/cobra"
)

// resolveProjectConfig obtains the project configuration for a command. If the --config flag was used, the
// referenced file must exist and be readable. Otherwise the default config file is consulted when present in
// the working directory, and the default configuration is used when it is not.
// Returns the resolved ProjectConfig, or an error if one occurs.
func resolveProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	// Check to see if --config flag was used and store the value of --config flag
	configFlagUsed := cmd.Flags().Changed("config")
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If --config was not used, look for the default config file in the current work directory
	if !configFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)

		// Use the default configuration when no config file exists.
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			return config.GetDefaultProjectConfig(), nil
		}
	}

	// Read and validate the referenced configuration file.
	projectConfig, err := config.ReadProjectConfigFromFile(configPath)
	if err != nil {
		return nil, err
	}
	err = projectConfig.Validate()
	if err != nil {
		return nil, err
	}
	return projectConfig, nil
}

// setupLogging configures the global logger from the resolved logging configuration and derives the CLI's
// command logger from it, so every package's sub-logger honors the configured level and console setting.
func setupLogging(loggingConfig config.LoggingConfig) {
	logging.GlobalLogger = logging.NewLogger(loggingConfig.Level, loggingConfig.EnableConsoleLogging)
	cmdLogger = logging.GlobalLogger.NewSubLogger("module", "cli")
}

// createEnvironment creates a fresh REPL environment pinned to the configured solc version override, or to
// the system-resolved version when no override is set. Returns the environment, or an error if one occurs.
func createEnvironment(projectConfig *config.ProjectConfig) (*repl.Environment, error) {
	if projectConfig.SolcVersion != "" {
		return repl.NewEnvironment(parser.NewParser(), projectConfig.SolcVersion)
	}
	return repl.DefaultEnvironment(parser.NewParser())
}

// openSessionCache resolves the project configuration for a command, applies its logging settings, and opens
// the session cache it designates. Returns the cache and the resolved configuration, or an error if one
// occurs.
func openSessionCache(cmd *cobra.Command) (*cache.SessionCache, *config.ProjectConfig, error) {
	projectConfig, err := resolveProjectConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	// Apply the configured logging settings before any sub-loggers are derived.
	setupLogging(projectConfig.Logging)

	sessionCache, err := cache.NewSessionCache(projectConfig.CacheDirectory)
	if err != nil {
		return nil, nil, err
	}
	return sessionCache, projectConfig, nil
}
