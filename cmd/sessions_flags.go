package cmd

import "fmt"

// addSessionsFlags adds the flags shared by the sessions sub-commands.
func addSessionsFlags() {
	// Prevent alphabetical sorting of usage message
	sessionsCmd.PersistentFlags().SortFlags = false

	// Config file path
	sessionsCmd.PersistentFlags().String("config", "",
		fmt.Sprintf("path to config file (unless a custom config is provided, solrepl will use the default config: %s)", DefaultProjectConfigFilename))
}
