package style

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Decode reads the image file behind ref and scales it to w by h pixels.
// A zero w or h keeps the file's size. Formats without a decoder, such as
// SVG, fail.
func Decode(ref ImageRef, w, h int) (image.Image, error) {
	f, err := os.Open(string(ref))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ref, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	if w <= 0 || h <= 0 {
		return img, nil
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img, nil
	}
	return resize.Resize(uint(w), uint(h), img, resize.Bilinear), nil
}

// Files returns the refs of s that name image files, skipping procedural
// ones.
func Files(s Style, identities []string) []ImageRef {
	var out []ImageRef
	for _, ref := range Refs(s, identities) {
		if _, plain := PlainLabel(ref); plain || IsPlainBack(ref) || ref == Placeholder {
			continue
		}
		out = append(out, ref)
	}
	return out
}
