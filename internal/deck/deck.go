// Package deck builds, reverses and shuffles the tarot decks served by the
// local draw service.
package deck

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// ReversedMarker is the value of Card.Reversed for a reversed card
const ReversedMarker = "(Reversed)"

// NoMoreCardsMessage accompanies a draw that was cut short by the deck size
const NoMoreCardsMessage = "There are no more cards to display."

// ErrUnknownDeckSize is returned for a deck size the service does not offer
var ErrUnknownDeckSize = errors.New("invalid deck size or reverse option")

// Build returns the unshuffled, upright cards for a deck size. Image fields
// hold bare file names.
func Build(size draw.DeckSize) ([]card.Card, error) {
	switch size {
	case draw.MajorArcanaOnly:
		return majorArcana(), nil
	case draw.MinorArcanaOnly:
		return minorArcana(), nil
	case draw.FullDeck:
		return append(majorArcana(), minorArcana()...), nil
	default:
		return nil, ErrUnknownDeckSize
	}
}

// IncludeReversed marks each card reversed with probability one half
func IncludeReversed(cards []card.Card, r *rand.Rand) {
	for i := range cards {
		if intN(r, 2) == 1 {
			cards[i].Reversed = ReversedMarker
		} else {
			cards[i].Reversed = ""
		}
	}
}

// Shuffle permutes cards in place (Fisher-Yates)
func Shuffle(cards []card.Card, r *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := intN(r, i+1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal draws req.NumCards cards from a freshly shuffled deck. Asking for
// fewer than one card deals the default count; asking for more than the
// deck holds deals the whole deck with NoMoreCardsMessage.
func Deal(req draw.Request, r *rand.Rand) (draw.Result, error) {
	cards, err := Build(req.DeckSize)
	if err != nil {
		return draw.Result{}, err
	}

	if req.DeckReverse == draw.UprightAndReversed {
		IncludeReversed(cards, r)
	}

	numCards := req.NumCards
	if numCards < 1 {
		numCards = draw.DefaultNumCards
	}

	var message string
	if numCards > len(cards) {
		numCards = len(cards)
		message = NoMoreCardsMessage
	}

	Shuffle(cards, r)
	return draw.Result{DrawnCards: cards[:numCards], Message: message}, nil
}

// Find looks a card up in the full deck by label ("XIII Death", "Ace of
// Cups") or by a name that only one card carries ("death"), ignoring case
// and extra spaces
func Find(query string) (card.Card, bool) {
	query = strings.Join(strings.Fields(query), " ")
	cards, _ := Build(draw.FullDeck)

	var byName []card.Card
	for _, c := range cards {
		if strings.EqualFold(c.AltText(), query) {
			return c, true
		}
		if strings.EqualFold(c.NameSuit, query) {
			byName = append(byName, c)
		}
	}
	if len(byName) == 1 {
		return byName[0], true
	}
	return card.Card{}, false
}

// intN uses the auto-seeded global source unless r is set
func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
