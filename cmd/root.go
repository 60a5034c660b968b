package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtable/internal/config"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Play cards on a drag-and-drop table",
	Long: `Cardtable lays out card fields on a canvas or in the terminal and lets you move
cards between them by dragging. It plays with the tarot decks in your deck
library (XDG_DATA_HOME/tarot/decks), or with plain procedural cards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		return setupLogging(os.Stderr, level, true)
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	RootCmd.AddCommand(validateCmd)
}

// setupLogging points the package logger at w. Console output is meant
// for a terminal; files get JSON lines.
func setupLogging(w io.Writer, level string, console bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
