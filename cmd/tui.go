package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtable/internal/config"
	"github.com/arcanaland/cardtable/internal/screen"
	"github.com/arcanaland/cardtable/internal/table"
	"github.com/arcanaland/cardtable/internal/tuihost"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play at the card table in the terminal",
	Long: `Tui runs the card table in the terminal with plain cards. Drag with the
mouse; press q to quit. The drag threshold from the config is read in
pixels, six to a cell. Logs go to XDG_CACHE_HOME/cardtable/tui.log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")

		logPath := filepath.Join(config.GetCacheDir(), "tui.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return fmt.Errorf("error creating cache directory: %w", err)
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer logFile.Close()

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		if err := setupLogging(logFile, level, false); err != nil {
			return err
		}

		t, err := setupTable("plain", deckFlag)
		if err != nil {
			return err
		}

		shell := screen.NewShell(log)
		if _, err := table.Mount(shell, t.table, table.CellMetrics(), t.title, log); err != nil {
			return err
		}
		return tuihost.Run(tuihost.New(shell, t.styles, t.style.Name(), tuihost.CellThreshold(cfg.DragThreshold), log))
	},
}

func init() {
	RootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringP("deck", "d", "", "Deal the cards of a deck from your deck library")
}
