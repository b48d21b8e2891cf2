package deck

import "github.com/arcanaland/shuffledraw/internal/card"

type majorCard struct {
	numeral string
	name    string
	image   string
}

// Major arcana in Marseille order with The Fool last
var majorCards = []majorCard{
	{"I", "The Magician", "RWS_Tarot_01_Magician.jpg"},
	{"II", "The Papess", "RWS_Tarot_02_High_Priestess.jpg"},
	{"III", "The Empress", "RWS_Tarot_03_Empress.jpg"},
	{"IV", "The Emperor", "RWS_Tarot_04_Emperor.jpg"},
	{"V", "The Heirophant", "RWS_Tarot_05_Hierophant.jpg"},
	{"VI", "The Lovers", "RWS_Tarot_06_Lovers.jpg"},
	{"VII", "The Chariot", "RWS_Tarot_07_Chariot.jpg"},
	{"VIII", "Justice", "RWS_Tarot_08_Strength.jpg"},
	{"IX", "The Hermit", "RWS_Tarot_09_Hermit.jpg"},
	{"X", "The Wheel Of Fortune", "RWS_Tarot_10_Wheel_of_Fortune.jpg"},
	{"XI", "Strength", "RWS_Tarot_11_Justice.jpg"},
	{"XII", "The Hanged Man", "RWS_Tarot_12_Hanged_Man.jpg"},
	{"XIII", "Death", "RWS_Tarot_13_Death.jpg"},
	{"XIV", "Temperance", "RWS_Tarot_14_Temperance.jpg"},
	{"XV", "The Devil", "RWS_Tarot_15_Devil.jpg"},
	{"XVI", "The Tower", "RWS_Tarot_16_Tower.jpg"},
	{"XVII", "The Star", "RWS_Tarot_17_Star.jpg"},
	{"XVIII", "The Moon", "RWS_Tarot_18_Moon.jpg"},
	{"XIX", "The Sun", "RWS_Tarot_19_Sun.jpg"},
	{"XX", "The Last Judgment", "RWS_Tarot_20_Judgement.jpg"},
	{"XXI", "The World", "RWS_Tarot_21_World.jpg"},
	{"_", "The Fool", "RWS_Tarot_00_Fool.jpg"},
}

// Suits as {image prefix, display name}
var minorSuits = [][2]string{
	{"Cups", "Cups"},
	{"Wands", "Wands"},
	{"Swords", "Swords"},
	{"Pents", "Pentacles"},
}

// Ranks as {image number, display name}
var minorRanks = [][2]string{
	{"01", "Ace"}, {"02", "Two"}, {"03", "Three"}, {"04", "Four"}, {"05", "Five"},
	{"06", "Six"}, {"07", "Seven"}, {"08", "Eight"}, {"09", "Nine"}, {"10", "Ten"},
	{"11", "Page"}, {"12", "Knight"}, {"13", "Queen"}, {"14", "King"},
}

// Image files whose names break the <suit><rank>.jpg pattern
var minorImageOverrides = map[string]string{
	"Wands09": "Tarot_Nine_of_Wands.jpg",
}

// majorArcana generates the major arcana deck
func majorArcana() []card.Card {
	cards := make([]card.Card, 0, len(majorCards))
	for _, m := range majorCards {
		cards = append(cards, card.Card{
			Number:   m.numeral,
			NameSuit: m.name,
			Image:    m.image,
		})
	}
	return cards
}

// minorArcana generates the minor arcana deck
func minorArcana() []card.Card {
	cards := make([]card.Card, 0, len(minorSuits)*len(minorRanks))
	for _, suit := range minorSuits {
		for _, rank := range minorRanks {
			key := suit[0] + rank[0]
			image, ok := minorImageOverrides[key]
			if !ok {
				image = key + ".jpg"
			}
			cards = append(cards, card.Card{
				Number:   rank[1],
				NameSuit: "of " + suit[1],
				Image:    image,
			})
		}
	}
	return cards
}
