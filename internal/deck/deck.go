package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardtable/internal/card"
)

// Entry is the per-identity metadata a deck carries.
type Entry struct {
	Tarot   card.Tarot
	Name    string // Localized name
	AltText string // Descriptive alt text
}

func (e *Entry) ID() string { return e.Tarot.Identity() }

// Deck represents a tarot deck directory
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	AspectRatio float64
	Path        string

	entries map[string]*Entry
	config  *DeckConfig
}

// LoadDeck loads a tarot deck from a directory
func LoadDeck(deckPath string) (*Deck, error) {
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %w", err)
	}

	d := &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Author:      config.Deck.Author,
		Description: config.Deck.Description,
		AspectRatio: config.Deck.AspectRatio,
		Path:        deckPath,
		entries:     make(map[string]*Entry),
		config:      &config,
	}
	if d.ID == "" {
		d.ID = filepath.Base(deckPath)
	}
	if d.AspectRatio <= 0 {
		d.AspectRatio = 0.58
	}

	if err := d.loadCardInfo(); err != nil {
		return nil, fmt.Errorf("error loading card info: %w", err)
	}
	return d, nil
}

// loadCardInfo creates an entry per tarot identity and applies names and
// alt text from the names directory when present.
func (d *Deck) loadCardInfo() error {
	for _, t := range card.TarotDeck() {
		d.entries[t.Identity()] = &Entry{Tarot: t}
	}

	langPath, ok := d.languageFile()
	if ok {
		var names NameConfig
		if _, err := toml.DecodeFile(langPath, &names); err != nil {
			d.setDefaultNames()
			return fmt.Errorf("error parsing language file: %w", err)
		}
		d.applyNames(names)
	}
	d.setDefaultNames()
	return nil
}

// languageFile prefers names/en.toml and falls back to any other .toml.
func (d *Deck) languageFile() (string, bool) {
	namesDir := filepath.Join(d.Path, "names")
	en := filepath.Join(namesDir, "en.toml")
	if _, err := os.Stat(en); err == nil {
		return en, true
	}
	entries, err := os.ReadDir(namesDir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".toml" {
			return filepath.Join(namesDir, entry.Name()), true
		}
	}
	return "", false
}

func (d *Deck) applyNames(names NameConfig) {
	for num, name := range names.MajorArcana.Names {
		if e, ok := d.entries[card.MajorArcana+"."+num]; ok {
			e.Name = name
		}
	}
	for num, alt := range names.MajorArcana.AltText {
		if e, ok := d.entries[card.MajorArcana+"."+num]; ok {
			e.AltText = alt
		}
	}
	for suit, section := range names.MinorArcana {
		for rank, name := range section.Names {
			if e, ok := d.entries[card.MinorArcana+"."+suit+"."+rank]; ok {
				e.Name = name
			}
		}
		for rank, alt := range section.AltText {
			if e, ok := d.entries[card.MinorArcana+"."+suit+"."+rank]; ok {
				e.AltText = alt
			}
		}
	}
}

// setDefaultNames fills in any entry still missing a name
func (d *Deck) setDefaultNames() {
	for _, e := range d.entries {
		if e.Name != "" {
			continue
		}
		if e.Tarot.Arcana == card.MajorArcana {
			e.Name = getDefaultMajorArcanaName(e.Tarot.Number)
		} else {
			e.Name = getDefaultMinorArcanaName(e.Tarot.Rank, e.Tarot.Suit)
		}
	}
}

// GetCard gets a card entry by its canonical ID
func (d *Deck) GetCard(cardID string) (*Entry, error) {
	if _, err := card.ParseTarot(cardID); err != nil {
		return nil, err
	}
	e, ok := d.entries[cardID]
	if !ok || d.Excluded(cardID) {
		return nil, fmt.Errorf("card not found: %s", cardID)
	}
	return e, nil
}

// Excluded reports whether deck.toml excludes the card.
func (d *Deck) Excluded(cardID string) bool {
	ex := d.config.Deck.ExcludedCards
	if ex == nil {
		return false
	}
	for _, id := range ex.Cards {
		if id == cardID {
			return true
		}
	}
	return false
}

// Identities lists the canonical ids the deck provides, in deck order.
func (d *Deck) Identities() []string {
	var out []string
	for _, id := range card.TarotIdentities() {
		if !d.Excluded(id) {
			out = append(out, id)
		}
	}
	return out
}

// Build creates one face-down card per identity, bottom to top in deck
// order.
func (d *Deck) Build() *card.Pile {
	pile := card.NewPile()
	for _, id := range d.Identities() {
		pile.Put(card.New(d.entries[id].Tarot, true))
	}
	return pile
}

// CardBack returns the configured default card back image, relative to
// the deck path.
func (d *Deck) CardBack() (string, bool) {
	backs := d.config.CardBacks
	if backs == nil || len(backs.Variants) == 0 {
		return "", false
	}
	if v, ok := backs.Variants[backs.Default]; ok && v.Image != "" {
		return v.Image, true
	}
	names := make([]string, 0, len(backs.Variants))
	for name := range backs.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if img := backs.Variants[name].Image; img != "" {
			return img, true
		}
	}
	return "", false
}

// getDefaultMajorArcanaName returns the default name for a major arcana card
func getDefaultMajorArcanaName(number string) string {
	names := map[string]string{
		"00": "The Fool",
		"01": "The Magician",
		"02": "The High Priestess",
		"03": "The Empress",
		"04": "The Emperor",
		"05": "The Hierophant",
		"06": "The Lovers",
		"07": "The Chariot",
		"08": "Strength",
		"09": "The Hermit",
		"10": "Wheel of Fortune",
		"11": "Justice",
		"12": "The Hanged Man",
		"13": "Death",
		"14": "Temperance",
		"15": "The Devil",
		"16": "The Tower",
		"17": "The Star",
		"18": "The Moon",
		"19": "The Sun",
		"20": "Judgement",
		"21": "The World",
	}

	if name, ok := names[number]; ok {
		return name
	}

	return fmt.Sprintf("Major Arcana %s", number)
}

// getDefaultMinorArcanaName returns the default name for a minor arcana card
func getDefaultMinorArcanaName(rank, suit string) string {
	return fmt.Sprintf("%s of %s", capitalize(rank), capitalize(suit))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Deck configuration structures
type DeckConfig struct {
	Deck      DeckSection               `toml:"deck"`
	CardBacks *CardBackSection          `toml:"card_backs"`
	Variants  map[string]VariantSection `toml:"variants"`
}

type DeckSection struct {
	ID            string               `toml:"id"`
	Name          string               `toml:"name"`
	Version       string               `toml:"version"`
	SchemaVersion string               `toml:"schema_version"`
	Author        string               `toml:"author"`
	License       string               `toml:"license"`
	AspectRatio   float64              `toml:"aspect_ratio"`
	Description   string               `toml:"description"`
	Tags          []string             `toml:"tags"`
	ExcludedCards *ExcludedCardSection `toml:"excluded_cards"`
}

type ExcludedCardSection struct {
	Cards  []string `toml:"cards"`
	Reason string   `toml:"reason"`
}

type CardBackSection struct {
	Default  string                     `toml:"default"`
	Variants map[string]CardBackVariant `toml:"variants"`
}

type CardBackVariant struct {
	Name    string `toml:"name"`
	Image   string `toml:"image"`
	AltText string `toml:"alt_text"`
}

type VariantSection struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	CardBack string `toml:"card_back"`
}

// Name configuration structures
type NameConfig struct {
	MajorArcana NameSection            `toml:"major_arcana"`
	MinorArcana map[string]NameSection `toml:"minor_arcana"`
}

// NameSection maps a number or rank to a name, with alt text in a nested
// alt_text table.
type NameSection struct {
	Names   map[string]string
	AltText map[string]string
}

// UnmarshalTOML splits plain string keys from the alt_text table.
func (n *NameSection) UnmarshalTOML(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a table, got %T", data)
	}
	n.Names = make(map[string]string)
	for k, v := range m {
		switch val := v.(type) {
		case string:
			n.Names[k] = val
		case map[string]any:
			if k != "alt_text" {
				continue
			}
			n.AltText = make(map[string]string)
			for ak, av := range val {
				if s, ok := av.(string); ok {
					n.AltText[ak] = s
				}
			}
		}
	}
	return nil
}
