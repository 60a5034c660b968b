package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ImageDirs lists raster/vector directories in lookup priority order.
var ImageDirs = []string{"scalable", "h2400", "h1200", "h750"}

// ImageExtensions lists the image file extensions a deck may use.
var ImageExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".webp"}

// AnsiDirs lists pre-rendered ANSI art directories in lookup order.
var AnsiDirs = []string{"ansi32", "ansi256"}

// BuildCardPath constructs the path to a card file under baseDir
func BuildCardPath(baseDir string, parts []string, extension string) (string, error) {
	switch {
	case parts[0] == "major_arcana" && len(parts) == 2:
		return filepath.Join(baseDir, "major_arcana", parts[1]+extension), nil
	case parts[0] == "minor_arcana" && len(parts) == 3:
		return filepath.Join(baseDir, "minor_arcana", parts[1], parts[2]+extension), nil
	case parts[0] == "custom_cards" && len(parts) == 3:
		return filepath.Join(baseDir, parts[0], parts[1], parts[2]+extension), nil
	case parts[0] == "custom_cards" && len(parts) == 4:
		return filepath.Join(baseDir, parts[0], parts[1], parts[2], parts[3]+extension), nil
	}
	return "", fmt.Errorf("invalid card ID format: %s", strings.Join(parts, "."))
}

// FindCardImage searches the deck's image directories for a card image.
// Known directories are tried first, then any other directory that is not
// reserved for ANSI art, backs or names.
func (d *Deck) FindCardImage(cardID string) (string, error) {
	parts := strings.Split(cardID, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid card ID format: %s", cardID)
	}

	dirs := make([]string, 0, len(ImageDirs))
	for _, dir := range ImageDirs {
		dirs = append(dirs, filepath.Join(d.Path, dir))
	}
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || reservedDir(name) {
			continue
		}
		dirs = append(dirs, filepath.Join(d.Path, name))
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		for _, ext := range ImageExtensions {
			path, err := BuildCardPath(dir, parts, ext)
			if err != nil {
				return "", err
			}
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("no image found for card %s", cardID)
}

// FindAnsiFile returns pre-rendered ANSI art for a card, if the deck has
// any.
func (d *Deck) FindAnsiFile(cardID string) (string, error) {
	parts := strings.Split(cardID, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid card ID format: %s", cardID)
	}
	for _, dir := range AnsiDirs {
		path, err := BuildCardPath(filepath.Join(d.Path, dir), parts, ".ansi")
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no ANSI art found for card %s", cardID)
}

// FindCardBack resolves the card back image: the deck.toml default
// variant first, then the first image in card_backs/.
func (d *Deck) FindCardBack() (string, error) {
	if img, ok := d.CardBack(); ok {
		path := filepath.Join(d.Path, img)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("card back image not found: %s", img)
		}
		return path, nil
	}

	dir := filepath.Join(d.Path, "card_backs")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("no card back configured and card_backs directory unreadable: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no card back image found in %s", dir)
}

func reservedDir(name string) bool {
	return slices.Contains(AnsiDirs, name) || slices.Contains(ImageDirs, name) ||
		name == "card_backs" || name == "names"
}
