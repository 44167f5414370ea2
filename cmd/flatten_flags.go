package cmd

import "fmt"

// addFlattenFlags adds the flags used by the flatten command.
func addFlattenFlags() {
	// Prevent alphabetical sorting of usage message
	flattenCmd.Flags().SortFlags = false

	// Config file path
	flattenCmd.Flags().String("config", "",
		fmt.Sprintf("path to config file (unless a custom config is provided, solrepl will use the default config: %s)", DefaultProjectConfigFilename))
}
