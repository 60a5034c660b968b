package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardtable/internal/deck"
	"github.com/arcanaland/cardtable/internal/style"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

func (r ValidationResults) OK() bool { return len(r.Errors) == 0 }

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck directory. It returns an error only when the
// deck cannot be read at all; problems with its contents land in Results.
func (v *Validator) Validate() (ValidationResults, error) {
	d, err := v.validateDeckToml()
	if err != nil {
		return v.Results, err
	}

	v.validateDirectoryStructure()
	v.validateCardBacks()
	v.validateFaces(d)
	v.validateNames()
	v.validateAnsiArt(d)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() (*deck.Deck, error) {
	deckTomlPath := filepath.Join(v.DeckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", v.DeckPath)
	}

	var deckConfig deck.DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &deckConfig); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %w", err)
	}

	if deckConfig.Deck.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if deckConfig.Deck.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if deckConfig.Deck.Version == "" {
		v.errorf("deck.version is required in deck.toml")
	}
	if deckConfig.Deck.SchemaVersion == "" {
		v.errorf("deck.schema_version is required in deck.toml")
	} else if deckConfig.Deck.SchemaVersion != "1.0" {
		v.errorf("unsupported schema_version: %s (supported: 1.0)", deckConfig.Deck.SchemaVersion)
	}
	if deckConfig.Deck.AspectRatio < 0 {
		v.errorf("deck.aspect_ratio must be positive")
	}

	if deckConfig.CardBacks != nil {
		if len(deckConfig.CardBacks.Variants) > 1 && deckConfig.CardBacks.Default == "" {
			v.errorf("card_backs.default is required when multiple card back variants are defined")
		}
		for variantName, variant := range deckConfig.CardBacks.Variants {
			if variant.Image == "" {
				v.errorf("card_backs.variants.%s.image is required", variantName)
				continue
			}
			if _, err := os.Stat(filepath.Join(v.DeckPath, variant.Image)); os.IsNotExist(err) {
				v.errorf("card back image not found: %s", variant.Image)
			}
		}
	}

	d, err := deck.LoadDeck(v.DeckPath)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// validateDirectoryStructure checks if the deck has the expected directory structure
func (v *Validator) validateDirectoryStructure() {
	if _, err := os.Stat(filepath.Join(v.DeckPath, "card_backs")); os.IsNotExist(err) {
		v.warnf("card_backs directory not found")
	}

	foundImageDir := false
	if _, err := os.Stat(filepath.Join(v.DeckPath, "scalable")); err == nil {
		foundImageDir = true
	}
	entries, err := os.ReadDir(v.DeckPath)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() && strings.HasPrefix(entry.Name(), "h") {
				if _, err := fmt.Sscanf(entry.Name(), "h%d", new(int)); err == nil {
					foundImageDir = true
					break
				}
			}
		}
	}
	if !foundImageDir {
		v.errorf("no image directories found (expecting scalable/ or h*/ directories)")
	}

	if _, err := os.Stat(filepath.Join(v.DeckPath, "names")); os.IsNotExist(err) {
		v.warnf("names directory not found")
	}
}

// validateCardBacks checks if card backs exist
func (v *Validator) validateCardBacks() {
	cardBacksDir := filepath.Join(v.DeckPath, "card_backs")
	if _, err := os.Stat(cardBacksDir); os.IsNotExist(err) {
		return // Already warned about missing directory
	}

	entries, err := os.ReadDir(cardBacksDir)
	if err != nil {
		v.errorf("error reading card_backs directory: %v", err)
		return
	}
	if len(entries) == 0 {
		v.errorf("no card backs found in card_backs directory")
	}
}

// validateFaces resolves the deck as a style, the same way the table does
// before it starts drawing.
func (v *Validator) validateFaces(d *deck.Deck) {
	_, err := style.Load(d.ID, style.NewDeckLoader(d), d.Identities(), 0, 0)
	var cfgErr *style.ConfigurationError
	if !errors.As(err, &cfgErr) {
		return
	}

	var faces []string
	for _, id := range cfgErr.Missing {
		if id == "card back" {
			v.errorf("no usable card back image")
			continue
		}
		faces = append(faces, id)
	}
	if len(faces) > 0 {
		v.errorf("missing card images: %s", strings.Join(faces, ", "))
	}
}

// validateNames checks localization files
func (v *Validator) validateNames() {
	namesDir := filepath.Join(v.DeckPath, "names")
	if _, err := os.Stat(namesDir); os.IsNotExist(err) {
		return // Already warned about missing directory
	}

	entries, err := os.ReadDir(namesDir)
	if err != nil {
		v.errorf("error reading names directory: %v", err)
		return
	}
	if len(entries) == 0 {
		v.errorf("no language files found in names directory")
		return
	}

	foundValidLangFile := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		var langConfig deck.NameConfig
		if _, err := toml.DecodeFile(filepath.Join(namesDir, entry.Name()), &langConfig); err != nil {
			v.errorf("error parsing language file %s: %v", entry.Name(), err)
			continue
		}
		foundValidLangFile = true

		if len(langConfig.MajorArcana.Names) == 0 {
			v.warnf("missing [major_arcana] section in %s", entry.Name())
		}
		if len(langConfig.MinorArcana) == 0 {
			v.warnf("missing [minor_arcana] section in %s", entry.Name())
		}

		hasAltText := len(langConfig.MajorArcana.AltText) > 0
		for _, section := range langConfig.MinorArcana {
			if len(section.AltText) > 0 {
				hasAltText = true
			}
		}
		if !hasAltText {
			v.warnf("no alt_text sections found in %s", entry.Name())
		}
	}

	if !foundValidLangFile {
		v.errorf("no valid language files found in names directory")
	}
}

// validateAnsiArt warns about gaps in pre-rendered ANSI art. It is
// optional; show falls back to converting images.
func (v *Validator) validateAnsiArt(d *deck.Deck) {
	found := false
	for _, dir := range deck.AnsiDirs {
		if _, err := os.Stat(filepath.Join(v.DeckPath, dir)); err == nil {
			found = true
		}
	}
	if !found {
		v.warnf("no ANSI art directories found (ansi32/, ansi256/)")
		return
	}

	var missing []string
	for _, id := range d.Identities() {
		if _, err := d.FindAnsiFile(id); err != nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		v.warnf("missing ANSI art for %d cards", len(missing))
	}
}
