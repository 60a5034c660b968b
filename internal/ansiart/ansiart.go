// Package ansiart converts card images into half-block ANSI text for the
// terminal.
package ansiart

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default size of generated art, in terminal cells.
const (
	Width  = 40
	Height = 32
)

// FromImage renders img as width by height cells. Each cell is an upper
// half block: the top two pixels set the foreground, the bottom two the
// background. Without trueColor the blocks are emitted uncoloured.
func FromImage(img image.Image, width, height int, trueColor bool) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			upper := average(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := average(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(cell('▀', upper, lower, trueColor))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// FromFile decodes an image file and renders it.
func FromFile(path string, width, height int) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img, width, height, true), nil
}

// Cached renders imagePath once and keeps the result under cacheDir, keyed
// by the image path and size. It returns the cached file's path.
func Cached(imagePath, cacheDir string, width, height int) (string, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}
	key := fmt.Sprintf("%s@%dx%d", imagePath, width, height)
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	art, err := FromFile(imagePath, width, height)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	return cachePath, nil
}

// Load reads pre-rendered art.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Strip removes SGR escape sequences.
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\033':
			inEscape = true
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth is the widest line of s once escapes are stripped, in runes.
func VisibleWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, len([]rune(Strip(line))))
	}
	return w
}

func colorAt(img image.Image, x, y int) colorful.Color {
	var c color.Color = color.Black
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		c = img.At(x, y)
	}
	cf, _ := colorful.MakeColor(c)
	return cf
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func cell(char rune, fg, bg colorful.Color, trueColor bool) string {
	if !trueColor {
		return string(char)
	}
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
}
