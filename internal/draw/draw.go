// Package draw defines the request and result exchanged with the draw service.
package draw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/shuffledraw/internal/card"
)

// DeckSize selects which part of the deck cards are drawn from
type DeckSize string

const (
	FullDeck        DeckSize = "Full Deck"
	MajorArcanaOnly DeckSize = "Major Arcana only"
	MinorArcanaOnly DeckSize = "Minor Arcana only"
)

// DeckSizes lists the deck size choices in form order
var DeckSizes = []DeckSize{FullDeck, MajorArcanaOnly, MinorArcanaOnly}

// DeckReverse selects whether reversed cards may be drawn
type DeckReverse string

const (
	UprightOnly        DeckReverse = "Upright only"
	UprightAndReversed DeckReverse = "Upright and reversed"
)

// DeckReverses lists the reversal choices in form order
var DeckReverses = []DeckReverse{UprightOnly, UprightAndReversed}

// DefaultNumCards is the card count a fresh form starts with
const DefaultNumCards = 8

// ErrInvalidNumCards is returned when fewer than one card is requested
var ErrInvalidNumCards = errors.New("number of cards must be at least 1")

// Request is the body of a draw submission
type Request struct {
	DeckSize    DeckSize    `json:"deckSize"`
	DeckReverse DeckReverse `json:"deckReverse"`
	NumCards    int         `json:"numCards"`
}

// DefaultRequest returns the values a fresh options form starts with
func DefaultRequest() Request {
	return Request{
		DeckSize:    FullDeck,
		DeckReverse: UprightAndReversed,
		NumCards:    DefaultNumCards,
	}
}

// Validate checks the only client-side constraint. Deck size and reversal
// are passed through verbatim; the service decides what they mean.
func (r Request) Validate() error {
	if r.NumCards < 1 {
		return ErrInvalidNumCards
	}
	return nil
}

// Result is the body of a successful draw response
type Result struct {
	DrawnCards []card.Card `json:"drawnCards" yaml:"drawnCards" toml:"drawnCards"`
	Message    string      `json:"message" yaml:"message,omitempty" toml:"message,omitempty"`
}

// ParseDeckSize matches a label or short alias case-insensitively
func ParseDeckSize(s string) (DeckSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "full deck", "all":
		return FullDeck, nil
	case "major", "major arcana", "major arcana only":
		return MajorArcanaOnly, nil
	case "minor", "minor arcana", "minor arcana only":
		return MinorArcanaOnly, nil
	}
	return "", fmt.Errorf("unknown deck size %q (expected one of: full, major, minor)", s)
}

// ParseDeckReverse matches a label or short alias case-insensitively
func ParseDeckReverse(s string) (DeckReverse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upright", "upright only", "no":
		return UprightOnly, nil
	case "both", "reversed", "upright and reversed", "yes":
		return UprightAndReversed, nil
	}
	return "", fmt.Errorf("unknown reversal policy %q (expected one of: upright, both)", s)
}
