package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtable/internal/config"
	"github.com/arcanaland/cardtable/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage tarot decks in your deck library",
	Long:  `Commands for managing the tarot decks cardtable can play with.`,
}

var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Deck library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'cardtable deck init' to create it.")
			return nil
		}
		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving deck library: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(libraryPath, entry.Name())
			info, err := os.Stat(entryPath)
			if err != nil {
				log.Warn().Err(err).Str("entry", entry.Name()).Msg("skipping library entry")
				continue
			}
			if !info.IsDir() {
				continue
			}
			d, err := deck.LoadDeck(entryPath)
			if err != nil {
				log.Debug().Err(err).Str("entry", entry.Name()).Msg("not a deck")
				continue
			}

			found++
			line := fmt.Sprintf("%s (%s, %d cards)", entry.Name(), d.Name, len(d.Identities()))
			if entry.Name() == cfg.DefaultDeck {
				fmt.Println(color.GreenString("* %s [DEFAULT]", line))
			} else {
				fmt.Println("  " + line)
			}
		}

		if found == 0 {
			fmt.Println("No decks found in your deck library.")
			fmt.Println("You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the deck used when --deck is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]
		if _, err := loadDeck(deckName); err != nil {
			return err
		}
		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}
		fmt.Printf("Default deck set to: %s\n", deckName)
		return nil
	},
}

var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetDeckLibraryPath()
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}
		fmt.Println("Deck library initialized at:", libraryPath)
		fmt.Println("You can now add decks by copying them to this directory.")
		fmt.Println("Config file:", config.GetConfigFilePath())
		return nil
	},
}

// loadDeck resolves a deck by library name or path. An empty name means
// the configured default.
func loadDeck(name string) (*deck.Deck, error) {
	if name == "" {
		name = cfg.DefaultDeck
	}
	deckPath, err := config.GetDeckPath(name)
	if err != nil {
		return nil, err
	}
	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("not a valid deck: %w", err)
	}
	log.Debug().Str("deck", d.ID).Str("path", deckPath).Msg("deck loaded")
	return d, nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
