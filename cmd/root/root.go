// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tresor26/MOMO-Dashboard/internal/common"
	"github.com/Tresor26/MOMO-Dashboard/internal/config"
	"github.com/Tresor26/MOMO-Dashboard/internal/fileutils"
	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/smsparser"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Database string
	Patterns string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg holds the resolved application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "momo-dashboard",
		Short: "Classify mobile money SMS notifications and serve the results.",
		Long: `momo-dashboard ingests SMS backup XML exports, classifies each mobile
money notification into a transaction category, stores the results in SQLite,
and serves them through a JSON API for the dashboard frontend.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to momo-dashboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			smsparser.SetLogger(Log)
			fileutils.SetLogger(Log)
			common.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			// Command-line flags beat config file and environment.
			if SharedFlags.Database != "" {
				Cfg.Database.Path = SharedFlags.Database
			}
			if SharedFlags.Patterns != "" {
				Cfg.Patterns.File = SharedFlags.Patterns
			}

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flag values for all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Database, "db", "d", "", "SQLite database file (overrides configuration)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Patterns, "patterns", "p", "", "YAML pattern registry file (overrides built-in patterns)")
}

// Logger adapts the shared logrus instance to the structured interface the
// pipeline packages expect.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
