package card

import "strings"

// Card represents a tarot card as returned by the draw service
type Card struct {
	Number   string `json:"number" yaml:"number" toml:"number"`       // Numeral or rank (e.g., XIII, Ace)
	NameSuit string `json:"nameSuit" yaml:"nameSuit" toml:"nameSuit"` // Name or suit (e.g., Death, of Cups)
	Reversed string `json:"reversed" yaml:"reversed" toml:"reversed"` // Empty when upright, a marker otherwise
	Image    string `json:"image" yaml:"image" toml:"image"`          // Absolute image URL
}

// IsReversed reports whether the card was drawn reversed
func (c Card) IsReversed() bool {
	return c.Reversed != ""
}

// Label returns the display label, including the reversed marker if any
func (c Card) Label() string {
	return strings.Join(strings.Fields(c.Number+" "+c.NameSuit+" "+c.Reversed), " ")
}

// AltText returns a description of the card image without the reversed marker
func (c Card) AltText() string {
	return strings.Join(strings.Fields(c.Number+" "+c.NameSuit), " ")
}
