package cmd

import (
	"github.com/crytic/solrepl/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the root CLI command object. All commands are attached to this root command.
var rootCmd = &cobra.Command{
	Use:   "solrepl",
	Short: "A Solidity REPL session manager",
	Long:  "solrepl incrementally assembles fragments of Solidity into a compilable contract and manages the cached sessions doing so",
}

// cmdLogger is the logger used by all CLI commands. Console output is always enabled for the CLI; the
// configured log level is applied once configuration is resolved.
var cmdLogger = logging.NewLogger(zerolog.InfoLevel, true)

// Execute provides an exportable function to invoke the CLI. Returns an error if one was encountered.
func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.Execute()
}
