package cmd

import (
	"fmt"

	"github.com/crytic/solrepl/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the command provider for printing version information
var versionCmd = &cobra.Command{
	Use:           "version",
	Short:         "Print version information",
	Long:          `Print version information`,
	Args:          cobra.NoArgs,
	RunE:          cmdRunVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// cmdRunVersion executes the CLI version command, printing the build's version information.
func cmdRunVersion(cmd *cobra.Command, args []string) error {
	fmt.Print(version.GetInfo().String())
	return nil
}
