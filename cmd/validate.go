package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtable/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check that a deck directory can be played",
	Long: `Validate checks a tarot deck directory before it is used as a card style.
Every card the deck declares must have a face image, and the deck needs a
card back. Missing names and ANSI art are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		results, err := validator.NewValidator(deckPath).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if results.OK() {
			color.Green("✅ Deck '%s' is playable.", deckPath)
		} else {
			color.Red("❌ Deck '%s' has %d validation errors:", deckPath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			color.Yellow("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if !results.OK() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
