package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flattenCmd represents the command provider for flattening a cached session into contract source
var flattenCmd = &cobra.Command{
	Use:               "flatten [name]",
	Short:             "Render a cached session as contract source",
	Long:              `Render a cached session's fragments into a single flattened REPL contract. With no argument (or "latest"), the most recently modified session is rendered`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: cmdValidFlattenArgs,
	RunE:              cmdRunFlatten,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// cmdValidFlattenArgs will return which flags are valid for dynamic completion for the flatten command
func cmdValidFlattenArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		}
	})
	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	// Add all the flags allowed for the flatten command
	addFlattenFlags()

	// Add the flatten command to the root command
	rootCmd.AddCommand(flattenCmd)
}

// cmdRunFlatten executes the CLI flatten command, restoring the named (or latest) session and printing the
// synthesized contract source for it.
func cmdRunFlatten(cmd *cobra.Command, args []string) error {
	sessionCache, _, err := openSessionCache(cmd)
	if err != nil {
		cmdLogger.Error("Failed to open the session cache", err)
		return err
	}

	environment, err := restoreEnvironment(sessionCache, args)
	if err != nil {
		cmdLogger.Error("Failed to restore the session", err)
		return err
	}

	fmt.Print(environment.ContractSource())
	return nil
}
