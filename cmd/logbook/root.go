// Root command and session wiring for the logbook CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/github"
	"github.com/mesh-intelligence/logbook/internal/sync"
	"github.com/mesh-intelligence/logbook/pkg/logbook"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagOwner     string
	flagRepo      string
	flagBranch    string
	flagToken     string
	flagVerbose   bool
)

// Session state, initialized by PersistentPreRunE for all remote commands.
var (
	cfg    types.Config
	syn    *sync.Syncer
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "logbook",
	Short:   "Logbook tracks weekly student progress in a git-backed CSV store",
	Version: logbook.Version,
	Long: `Logbook manages students, teams, and their weekly progress entries.
All records live as CSV files in a git repository and are read and written
through the repository's content API, so every change is a commit and
concurrent editors are reconciled by record id.`,
	PersistentPreRunE: initSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.logbook)")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "repository owner (overrides config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRepo, "repo", "", "repository name (overrides config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBranch, "branch", "", "repository branch (default: main)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "access token (or LOGBOOK_TOKEN / GITHUB_TOKEN env)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(studentCmd)
}

// initSession loads configuration and wires the store client and syncer.
// The version command runs without a session.
func initSession(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	logger = newLogger(flagVerbose)

	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	// The config command shows whatever is configured, complete or not.
	if cmd.Name() == "config" {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := github.NewClient(cfg)
	client.SetLogger(logger)

	syn = sync.New(client)
	syn.SetLogger(logger)
	return nil
}

// newLogger builds the console logger on stderr so command output on stdout
// stays machine-readable.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
