package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/crytic/solrepl/cache"
	"github.com/crytic/solrepl/cmd/exitcodes"
	"github.com/crytic/solrepl/parser"
	"github.com/crytic/solrepl/repl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// sessionsCmd represents the command provider for cached session management
var sessionsCmd = &cobra.Command{
	Use:           "sessions",
	Short:         "Manage cached REPL sessions",
	Long:          `Manage the cached REPL sessions stored in the session cache directory`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sessionsListCmd represents the command provider for listing cached sessions
var sessionsListCmd = &cobra.Command{
	Use:           "list",
	Short:         "List all cached sessions",
	Long:          `List every cached session snapshot along with its last modification time`,
	Args:          cobra.NoArgs,
	RunE:          cmdRunSessionsList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sessionsViewCmd represents the command provider for viewing a cached session's fragments
var sessionsViewCmd = &cobra.Command{
	Use:           "view [name]",
	Short:         "View the fragments of a cached session",
	Long:          `View the raw source fragments of a cached session, in submission order. With no argument (or "latest"), the most recently modified session is shown`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          cmdRunSessionsView,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sessionsNewCmd represents the command provider for creating a fresh cached session
var sessionsNewCmd = &cobra.Command{
	Use:           "new",
	Short:         "Create and persist a new empty session",
	Long:          `Create a new empty session pinned to the configured solc version (or the system-resolved version) and persist it to the session cache`,
	Args:          cobra.NoArgs,
	RunE:          cmdRunSessionsNew,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sessionsPurgeCmd represents the command provider for purging the session cache
var sessionsPurgeCmd = &cobra.Command{
	Use:           "purge",
	Short:         "Delete all cached sessions",
	Long:          `Delete every entry in the session cache directory. This is irreversible; there is no backup`,
	Args:          cobra.NoArgs,
	RunE:          cmdRunSessionsPurge,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add the flags allowed for the sessions commands
	addSessionsFlags()

	// Add the sub-commands and attach the sessions command to the root command
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsViewCmd)
	sessionsCmd.AddCommand(sessionsNewCmd)
	sessionsCmd.AddCommand(sessionsPurgeCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// cmdRunSessionsList executes the CLI sessions list command, printing the name and modification time of
// every cached session snapshot.
func cmdRunSessionsList(cmd *cobra.Command, args []string) error {
	sessionCache, _, err := openSessionCache(cmd)
	if err != nil {
		cmdLogger.Error("Failed to open the session cache", err)
		return err
	}

	sessions, err := sessionCache.Enumerate()
	if err != nil {
		cmdLogger.Error("Failed to list cached sessions", err)
		return err
	}

	for _, session := range sessions {
		fmt.Printf("%s\t%s\n", session.ModifiedTime.Format("2006-01-02 15:04:05"), session.Name)
	}
	return nil
}

// cmdRunSessionsView executes the CLI sessions view command, restoring the named (or latest) session and
// printing its raw fragments in submission order.
func cmdRunSessionsView(cmd *cobra.Command, args []string) error {
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

	for _, snippet := range environment.Session() {
		fmt.Println(snippet)
	}
	return nil
}

// cmdRunSessionsNew executes the CLI sessions new command, creating an empty environment pinned per the
// resolved configuration and persisting it as a new snapshot.
func cmdRunSessionsNew(cmd *cobra.Command, args []string) error {
	sessionCache, projectConfig, err := openSessionCache(cmd)
	if err != nil {
		cmdLogger.Error("Failed to open the session cache", err)
		return err
	}

	environment, err := createEnvironment(projectConfig)
	if err != nil {
		cmdLogger.Error("Failed to create the environment", err)
		return err
	}

	path, err := environment.Persist(sessionCache)
	if err != nil {
		cmdLogger.Error("Failed to persist the session", err)
		return err
	}

	cmdLogger.Info(fmt.Sprintf("Created session %s pinned to solc %s", filepath.Base(path), environment.SolcVersion()))
	return nil
}

// cmdRunSessionsPurge executes the CLI sessions purge command, deleting every entry in the session cache
// directory.
func cmdRunSessionsPurge(cmd *cobra.Command, args []string) error {
	sessionCache, _, err := openSessionCache(cmd)
	if err != nil {
		cmdLogger.Error("Failed to open the session cache", err)
		return err
	}

	err = sessionCache.Purge()
	if err != nil {
		cmdLogger.Error("Failed to purge the session cache", err)
		return err
	}

	cmdLogger.Info("Purged all cached sessions")
	return nil
}

// restoreEnvironment restores a REPL environment from the session named by the command's positional
// arguments, resolving an absent argument or "latest" to the most recently modified session. An empty cache
// surfaces a distinct exit code so callers can tell it apart from cache failure.
func restoreEnvironment(sessionCache *cache.SessionCache, args []string) (*repl.Environment, error) {
	var (
		environment *repl.Environment
		err         error
	)
	if len(args) == 0 || args[0] == LatestSessionName {
		environment, err = repl.RestoreLatestSession(sessionCache, parser.NewParser())
	} else {
		environment, err = repl.RestoreSession(sessionCache, parser.NewParser(), args[0])
	}
	if errors.Is(err, cache.ErrNoSessions) {
		return nil, exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeNoSessions)
	}
	return environment, err
}
