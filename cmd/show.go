package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardtable/internal/ansiart"
	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/config"
	"github.com/arcanaland/cardtable/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card from a deck with ANSI art",
	Long: `Show draws one card of a deck in the terminal, the way the table draws it.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.
With --masked the card is shown face down: only the deck's card back is drawn.

Examples:
  cardtable show major_arcana.00
  cardtable show --deck rider-waite-smith minor_arcana.wands.ace
  cardtable show --masked major_arcana.13`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]
		deckFlag, _ := cmd.Flags().GetString("deck")
		masked, _ := cmd.Flags().GetBool("masked")

		d, err := loadDeck(deckFlag)
		if err != nil {
			return err
		}

		entry, err := d.GetCard(cardID)
		if err != nil {
			if hint := closestCard(d, cardID); hint != "" {
				return fmt.Errorf("%w (did you mean %s?)", err, hint)
			}
			return err
		}

		art, err := cardArt(d, cardID, masked)
		if err != nil {
			return fmt.Errorf("error loading ANSI art: %w", err)
		}

		var info []string
		if masked {
			info = []string{
				colorize.CyanString("Deck: ") + colorize.HiWhiteString(d.Name),
				colorize.CyanString("Card: ") + colorize.HiWhiteString("face down"),
			}
		} else {
			info = cardInfo(entry, d.Name)
		}
		displayCard(art, info, entry.AltText, !masked)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	showCmd.Flags().Bool("masked", false, "Show the card face down")
}

// cardArt prefers pre-rendered art and otherwise converts the image, caching
// the result.
func cardArt(d *deck.Deck, cardID string, masked bool) (string, error) {
	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	if masked {
		back, err := d.FindCardBack()
		if err != nil {
			return "", err
		}
		return cachedArt(back, cacheDir)
	}

	if path, err := d.FindAnsiFile(cardID); err == nil {
		return ansiart.Load(path)
	}
	img, err := d.FindCardImage(cardID)
	if err != nil {
		return "", fmt.Errorf("no ANSI art or convertible images found for card: %s", cardID)
	}
	return cachedArt(img, cacheDir)
}

func cachedArt(imagePath, cacheDir string) (string, error) {
	path, err := ansiart.Cached(imagePath, cacheDir, ansiart.Width, ansiart.Height)
	if err != nil {
		return "", err
	}
	return ansiart.Load(path)
}

func closestCard(d *deck.Deck, id string) string {
	best, bestDist := "", 4
	for _, candidate := range d.Identities() {
		if dist := levenshtein.ComputeDistance(id, candidate); dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

func suitSymbol(suit string) string {
	switch suit {
	case "wands":
		return ""
	case "cups":
		return ""
	case "swords":
		return "󰞇"
	case "pentacles":
		return "󱙧"
	default:
		return "•"
	}
}

func cardInfo(e *deck.Entry, deckName string) []string {
	label := colorize.CyanString
	value := colorize.HiWhiteString

	lines := []string{
		label("Card: ") + value("%s", e.Name),
		label("Deck: ") + value("%s", deckName),
		label("ID:   ") + value("%s", e.ID()),
	}
	t := e.Tarot
	if t.Arcana == card.MajorArcana {
		lines = append(lines, label("Type: ")+value("Major Arcana · %s", t.Short()))
	} else {
		lines = append(lines,
			label("Type: ")+value("Minor Arcana · %s", t.Short()),
			label("Suit: ")+value("%s · %s", t.Suit, suitSymbol(t.Suit)),
			label("Rank: ")+value("%s", t.Rank),
		)
	}
	return lines
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
			continue
		}
		result = append(result, currentLine)
		currentLine = word
	}
	return append(result, currentLine)
}

// displayCard prints the art on the left and the info lines to its right.
func displayCard(art string, info []string, altText string, withAlt bool) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	artWidth := ansiart.VisibleWidth(art)

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	const spacing = 4
	infoStartCol := artWidth + spacing
	infoWidth := max(width-infoStartCol-2, 20)

	if withAlt && altText != "" {
		info = append(info, "", colorize.CyanString("Description:"))
		info = append(info, wrapText(altText, infoWidth)...)
	}

	fmt.Println()
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", max(infoStartCol-ansiart.VisibleWidth(artLines[i]), 0)))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			fmt.Print(info[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
