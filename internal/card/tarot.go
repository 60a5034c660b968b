package card

import (
	"fmt"
	"strings"
)

const (
	MajorArcana = "major_arcana"
	MinorArcana = "minor_arcana"
)

// Suits and Ranks list the minor arcana in canonical order.
var (
	Suits = []string{"wands", "cups", "swords", "pentacles"}
	Ranks = []string{
		"ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"page", "knight", "queen", "king",
	}
)

// Tarot identifies a card of a 78-card tarot deck.
type Tarot struct {
	Arcana string // major_arcana or minor_arcana
	Number string // For major arcana (00-21)
	Suit   string // For minor arcana (wands, cups, swords, pentacles)
	Rank   string // For minor arcana (ace, two, ..., king)
}

// Identity returns the canonical id, e.g. major_arcana.00 or
// minor_arcana.wands.ace.
func (t Tarot) Identity() string {
	if t.Arcana == MajorArcana {
		return MajorArcana + "." + t.Number
	}
	return MinorArcana + "." + t.Suit + "." + t.Rank
}

// Parts splits the identity the way deck directories are laid out.
func (t Tarot) Parts() []string {
	return strings.Split(t.Identity(), ".")
}

// ParseTarot parses a canonical tarot id.
func ParseTarot(id string) (Tarot, error) {
	parts := strings.Split(id, ".")
	switch {
	case len(parts) == 2 && parts[0] == MajorArcana:
		var n int
		if _, err := fmt.Sscanf(parts[1], "%02d", &n); err != nil || n < 0 || n > 21 || len(parts[1]) != 2 {
			return Tarot{}, fmt.Errorf("invalid major arcana number: %s", parts[1])
		}
		return Tarot{Arcana: MajorArcana, Number: parts[1]}, nil
	case len(parts) == 3 && parts[0] == MinorArcana:
		if !contains(Suits, parts[1]) {
			return Tarot{}, fmt.Errorf("unknown suit: %s", parts[1])
		}
		if !contains(Ranks, parts[2]) {
			return Tarot{}, fmt.Errorf("unknown rank: %s", parts[2])
		}
		return Tarot{Arcana: MinorArcana, Suit: parts[1], Rank: parts[2]}, nil
	}
	return Tarot{}, fmt.Errorf("invalid card ID format: %s", id)
}

var (
	romans     = []string{"0", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI"}
	rankShort  = map[string]string{"ace": "A", "page": "P", "knight": "N", "queen": "Q", "king": "K"}
	suitSymbol = map[string]string{"wands": "W", "cups": "C", "swords": "S", "pentacles": "P"}
)

// Short is a compact label: roman numerals for the major arcana, rank and
// suit letters for the minor arcana (e.g. XIII, 10C, QS).
func (t Tarot) Short() string {
	if t.Arcana == MajorArcana {
		var n int
		fmt.Sscanf(t.Number, "%d", &n)
		if n >= 0 && n < len(romans) {
			return romans[n]
		}
		return t.Number
	}
	r, ok := rankShort[t.Rank]
	if !ok {
		for i, rank := range Ranks {
			if rank == t.Rank {
				r = fmt.Sprint(i + 1)
			}
		}
	}
	return r + suitSymbol[t.Suit]
}

// TarotDeck returns all 78 encodings, major arcana first.
func TarotDeck() []Tarot {
	out := make([]Tarot, 0, 78)
	for i := 0; i <= 21; i++ {
		out = append(out, Tarot{Arcana: MajorArcana, Number: fmt.Sprintf("%02d", i)})
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			out = append(out, Tarot{Arcana: MinorArcana, Suit: suit, Rank: rank})
		}
	}
	return out
}

// TarotIdentities returns the identities of TarotDeck in the same order.
func TarotIdentities() []string {
	deck := TarotDeck()
	out := make([]string, len(deck))
	for i, t := range deck {
		out[i] = t.Identity()
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
