// Package validator checks saved readings against the tarot deck the draw
// service deals from.
package validator

import (
	"fmt"
	"net/url"
	"os"
	"path"

	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/deck"
	"github.com/arcanaland/shuffledraw/internal/display"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ReadingPath string
	// Expect, when set, is the request the reading should answer
	Expect  *draw.Request
	Results ValidationResults
}

func NewValidator(readingPath string) *Validator {
	return &Validator{
		ReadingPath: readingPath,
		Results:     ValidationResults{},
	}
}

// Validate loads the reading and runs every check on it
func (v *Validator) Validate() (ValidationResults, error) {
	result, err := v.load()
	if err != nil {
		return v.Results, err
	}
	return v.ValidateResult(result), nil
}

// ValidateResult runs every check on an already loaded reading
func (v *Validator) ValidateResult(result *draw.Result) ValidationResults {
	known := v.knownCards()

	v.validateCount(result)
	v.validateCards(result.DrawnCards, known)
	v.validateDuplicates(result.DrawnCards)
	if v.Expect != nil {
		v.validateAgainstRequest(result)
	}

	return v.Results
}

func (v *Validator) load() (*draw.Result, error) {
	format, err := display.FormatForPath(v.ReadingPath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(v.ReadingPath)
	if err != nil {
		return nil, fmt.Errorf("error opening reading: %w", err)
	}
	defer file.Close()

	result, err := display.Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing reading: %w", err)
	}
	return result, nil
}

// knownCards indexes the deck the reading should come from by label
func (v *Validator) knownCards() map[string]card.Card {
	size := draw.FullDeck
	if v.Expect != nil && v.Expect.DeckSize != "" {
		size = v.Expect.DeckSize
	}

	cards, err := deck.Build(size)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("unknown deck size: %s", size))
		cards, _ = deck.Build(draw.FullDeck)
	}

	known := make(map[string]card.Card, len(cards))
	for _, c := range cards {
		known[c.AltText()] = c
	}
	return known
}

func (v *Validator) validateCount(result *draw.Result) {
	full, _ := deck.Build(draw.FullDeck)
	if len(result.DrawnCards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "reading has no cards")
	}
	if len(result.DrawnCards) > len(full) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("reading has %d cards but the deck only holds %d", len(result.DrawnCards), len(full)))
	}
}

// validateCards checks each card names a card of the deck with its image
func (v *Validator) validateCards(cards []card.Card, known map[string]card.Card) {
	for i, c := range cards {
		position := i + 1

		if c.Number == "" || c.NameSuit == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: number and nameSuit are required", position))
			continue
		}

		if c.Reversed != "" && c.Reversed != deck.ReversedMarker {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: reversed must be empty or %q, got %q", position, deck.ReversedMarker, c.Reversed))
		}

		want, ok := known[c.AltText()]
		if !ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %q is not in the deck", position, c.AltText()))
			continue
		}

		if c.Image == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: image is required", position))
		} else if file := imageFile(c.Image); file != want.Image {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d: image %s does not match %s", position, file, want.Image))
		}
	}
}

func (v *Validator) validateDuplicates(cards []card.Card) {
	seen := make(map[string]int, len(cards))
	for i, c := range cards {
		label := c.AltText()
		if label == "" {
			continue
		}
		if first, ok := seen[label]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card %d: %q was already drawn as card %d", i+1, label, first))
			continue
		}
		seen[label] = i + 1
	}
}

// validateAgainstRequest checks the count and reversals the request implies
func (v *Validator) validateAgainstRequest(result *draw.Result) {
	cards, err := deck.Build(v.Expect.DeckSize)
	if err != nil {
		return
	}

	want := v.Expect.NumCards
	if want < 1 {
		want = draw.DefaultNumCards
	}
	clamped := false
	if want > len(cards) {
		want = len(cards)
		clamped = true
	}

	if got := len(result.DrawnCards); got != want {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("expected %d cards, got %d", want, got))
	}
	if clamped && result.Message == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			"reading was cut short by the deck size but carries no message")
	}

	if v.Expect.DeckReverse == draw.UprightOnly {
		for i, c := range result.DrawnCards {
			if c.IsReversed() {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("card %d: reversed card in an upright-only reading", i+1))
			}
		}
	}
}

// imageFile returns the file name at the end of an image URL
func imageFile(image string) string {
	if u, err := url.Parse(image); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(image)
}
