package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/ebitenhost"
	"github.com/arcanaland/cardtable/internal/screen"
	"github.com/arcanaland/cardtable/internal/style"
	"github.com/arcanaland/cardtable/internal/table"
)

const cardHeight = 120

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table in a window",
	Long: `Play opens a window with a draw pile, a discard pile, a three-card spread
and a hand. Drag cards between them; click a spread card to turn it over.

With --style plain the cards are drawn from their names. With --style deck
the faces and back come from a deck directory, which must have an image for
every card it declares.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		styleFlag, _ := cmd.Flags().GetString("style")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if !cmd.Flags().Changed("style") {
			styleFlag = cfg.Style
		}
		if !cmd.Flags().Changed("width") {
			width = cfg.Window.Width
		}
		if !cmd.Flags().Changed("height") {
			height = cfg.Window.Height
		}

		t, err := setupTable(styleFlag, deckFlag)
		if err != nil {
			return err
		}

		w, h := t.style.Size()
		metrics := table.PixelMetrics(w, h)
		if need := metrics.Size(); float64(width) < need.W || float64(height) < need.H {
			log.Warn().Int("width", width).Int("height", height).
				Float64("need_width", need.W).Float64("need_height", need.H).
				Msg("window is smaller than the table")
		}

		shell := screen.NewShell(log)
		if _, err := table.Mount(shell, t.table, metrics, t.title, log); err != nil {
			return err
		}

		game := ebitenhost.New(shell, t.styles, ebitenhost.Options{
			Title:     t.title,
			Width:     width,
			Height:    height,
			Style:     t.style.Name(),
			Threshold: cfg.DragThreshold,
		}, log)
		game.Preload(t.identities)
		return ebitenhost.Run(game)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("deck", "d", "", "Deck from your deck library or a path to a deck")
	playCmd.Flags().String("style", "plain", "Card style: plain or deck")
	playCmd.Flags().Int("width", 960, "Window width in pixels")
	playCmd.Flags().Int("height", 640, "Window height in pixels")
}

type tableSetup struct {
	title      string
	style      style.Style
	styles     *style.Registry
	identities []string
	table      *table.Table
}

// setupTable registers the chosen style and deals a table for it. A deck
// style that is missing images fails here, before anything is drawn.
func setupTable(styleName, deckName string) (*tableSetup, error) {
	s := &tableSetup{
		title:      "cardtable",
		styles:     style.NewRegistry(log),
		identities: card.TarotIdentities(),
	}
	source := table.TarotSource

	switch styleName {
	case "plain":
		s.style = style.Plain{W: int(float64(cardHeight) * 0.6), H: cardHeight}
		if deckName != "" {
			d, err := loadDeck(deckName)
			if err != nil {
				return nil, err
			}
			s.title, s.identities, source = d.Name, d.Identities(), d.Build
		}
	case "deck":
		d, err := loadDeck(deckName)
		if err != nil {
			return nil, err
		}
		mapped, err := style.ForDeck(d, cardHeight)
		if err != nil {
			return nil, err
		}
		s.style, s.title, s.identities, source = mapped, d.Name, d.Identities(), d.Build
	default:
		return nil, fmt.Errorf("unknown style %q (plain or deck)", styleName)
	}

	if err := s.styles.Register(s.style, s.identities); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.table = table.New(source, rng, log)
	return s, nil
}
