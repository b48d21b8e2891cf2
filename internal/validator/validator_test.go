package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

func containsAny(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func writeReading(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write reading: %v", err)
	}
	return path
}

func TestValidateValidReading(t *testing.T) {
	path := writeReading(t, "reading.json", `{
  "drawnCards": [
    {"number": "XIII", "nameSuit": "Death", "reversed": "(Reversed)", "image": "https://cdn/images/RWS_Tarot_13_Death.jpg"},
    {"number": "Nine", "nameSuit": "of Wands", "reversed": "", "image": "https://cdn/images/Tarot_Nine_of_Wands.jpg"}
  ]
}`)

	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Errorf("Expected clean reading, got errors %v warnings %v", results.Errors, results.Warnings)
	}
}

func TestValidateYAMLReading(t *testing.T) {
	path := writeReading(t, "reading.yaml", `drawnCards:
  - number: _
    nameSuit: The Fool
    reversed: ""
    image: https://cdn/images/RWS_Tarot_00_Fool.jpg
`)

	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(results.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", results.Errors)
	}
}

func TestValidateLoadErrors(t *testing.T) {
	if _, err := NewValidator(filepath.Join(t.TempDir(), "missing.json")).Validate(); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := NewValidator(writeReading(t, "reading.txt", "{}")).Validate(); err == nil {
		t.Error("Expected error for unknown extension")
	}
	if _, err := NewValidator(writeReading(t, "reading.json", "{")).Validate(); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestValidateResultFindings(t *testing.T) {
	tests := []struct {
		name     string
		cards    []card.Card
		errors   []string
		warnings []string
	}{
		{
			name:     "empty reading",
			cards:    nil,
			warnings: []string{"reading has no cards"},
		},
		{
			name:   "missing fields",
			cards:  []card.Card{{Number: "I", Image: "x.jpg"}},
			errors: []string{"card 1: number and nameSuit are required"},
		},
		{
			name:   "unknown card",
			cards:  []card.Card{{Number: "XXII", NameSuit: "The Cat", Image: "cat.jpg"}},
			errors: []string{`"XXII The Cat" is not in the deck`},
		},
		{
			name:   "bad reversed marker",
			cards:  []card.Card{{Number: "I", NameSuit: "The Magician", Reversed: "upside down", Image: "RWS_Tarot_01_Magician.jpg"}},
			errors: []string{"reversed must be empty"},
		},
		{
			name: "duplicate card",
			cards: []card.Card{
				{Number: "I", NameSuit: "The Magician", Image: "RWS_Tarot_01_Magician.jpg"},
				{Number: "I", NameSuit: "The Magician", Reversed: "(Reversed)", Image: "RWS_Tarot_01_Magician.jpg"},
			},
			errors: []string{"was already drawn as card 1"},
		},
		{
			name:   "missing image",
			cards:  []card.Card{{Number: "I", NameSuit: "The Magician"}},
			errors: []string{"card 1: image is required"},
		},
		{
			name:     "mismatched image",
			cards:    []card.Card{{Number: "I", NameSuit: "The Magician", Image: "https://cdn/images/RWS_Tarot_16_Tower.jpg"}},
			warnings: []string{"does not match RWS_Tarot_01_Magician.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := NewValidator("").ValidateResult(&draw.Result{DrawnCards: tt.cards})

			if len(results.Errors) != len(tt.errors) {
				t.Errorf("Expected %d errors, got %v", len(tt.errors), results.Errors)
			}
			for _, want := range tt.errors {
				if !containsAny(results.Errors, want) {
					t.Errorf("Expected error containing %q, got %v", want, results.Errors)
				}
			}
			if len(results.Warnings) != len(tt.warnings) {
				t.Errorf("Expected %d warnings, got %v", len(tt.warnings), results.Warnings)
			}
			for _, want := range tt.warnings {
				if !containsAny(results.Warnings, want) {
					t.Errorf("Expected warning containing %q, got %v", want, results.Warnings)
				}
			}
		})
	}
}

func TestValidateAgainstRequest(t *testing.T) {
	magician := card.Card{Number: "I", NameSuit: "The Magician", Image: "RWS_Tarot_01_Magician.jpg"}
	cupsAce := card.Card{Number: "Ace", NameSuit: "of Cups", Reversed: "(Reversed)", Image: "Cups01.jpg"}

	t.Run("wrong deck", func(t *testing.T) {
		v := NewValidator("")
		v.Expect = &draw.Request{DeckSize: draw.MajorArcanaOnly, DeckReverse: draw.UprightAndReversed, NumCards: 1}
		results := v.ValidateResult(&draw.Result{DrawnCards: []card.Card{cupsAce}})
		if !containsAny(results.Errors, `"Ace of Cups" is not in the deck`) {
			t.Errorf("Expected minor card rejected from major deck, got %v", results.Errors)
		}
	})

	t.Run("wrong count", func(t *testing.T) {
		v := NewValidator("")
		v.Expect = &draw.Request{DeckSize: draw.FullDeck, DeckReverse: draw.UprightAndReversed, NumCards: 3}
		results := v.ValidateResult(&draw.Result{DrawnCards: []card.Card{magician}})
		if !containsAny(results.Errors, "expected 3 cards, got 1") {
			t.Errorf("Expected count error, got %v", results.Errors)
		}
	})

	t.Run("reversed in upright reading", func(t *testing.T) {
		v := NewValidator("")
		v.Expect = &draw.Request{DeckSize: draw.FullDeck, DeckReverse: draw.UprightOnly, NumCards: 1}
		results := v.ValidateResult(&draw.Result{DrawnCards: []card.Card{cupsAce}})
		if !containsAny(results.Errors, "reversed card in an upright-only reading") {
			t.Errorf("Expected reversal error, got %v", results.Errors)
		}
	})

	t.Run("default and clamped counts", func(t *testing.T) {
		v := NewValidator("")
		v.Expect = &draw.Request{DeckSize: draw.MajorArcanaOnly, DeckReverse: draw.UprightOnly}
		results := v.ValidateResult(&draw.Result{DrawnCards: []card.Card{magician}})
		if !containsAny(results.Errors, "expected 8 cards, got 1") {
			t.Errorf("Expected default count to apply, got %v", results.Errors)
		}

		v = NewValidator("")
		v.Expect = &draw.Request{DeckSize: draw.MajorArcanaOnly, DeckReverse: draw.UprightOnly, NumCards: 30}
		results = v.ValidateResult(&draw.Result{DrawnCards: []card.Card{magician}})
		if !containsAny(results.Warnings, "cut short by the deck size") {
			t.Errorf("Expected missing message warning, got %v", results.Warnings)
		}
	})
}
