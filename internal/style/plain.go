package style

import (
	"strings"

	"github.com/arcanaland/cardtable/internal/card"
)

const plainPrefix = "plain:"

// Plain draws cards procedurally from their identity; it needs no files.
type Plain struct {
	W, H int
}

func (p Plain) Name() string { return "plain" }

func (p Plain) Face(identity string) (ImageRef, bool) {
	if identity == "" {
		return "", false
	}
	return ImageRef(plainPrefix + "face:" + identity), true
}

func (p Plain) Back() ImageRef { return ImageRef(plainPrefix + "back") }

func (p Plain) Size() (int, int) { return p.W, p.H }

// PlainLabel returns the text a painter shows for a plain ref. Backs and
// foreign refs have no label.
func PlainLabel(ref ImageRef) (string, bool) {
	id, ok := strings.CutPrefix(string(ref), plainPrefix+"face:")
	if !ok {
		return "", false
	}
	if t, err := card.ParseTarot(id); err == nil {
		return t.Short(), true
	}
	return id, true
}

// IsPlainBack reports whether ref is the back of the plain style.
func IsPlainBack(ref ImageRef) bool {
	return ref == Plain{}.Back()
}
