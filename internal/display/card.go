package display

import (
	"context"
	"fmt"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/shuffledraw/internal/card"
)

// PrintCard writes one card with its art on the left and details on the
// right
func (p *Printer) PrintCard(ctx context.Context, c card.Card) error {
	var art string
	if p.ShowArt {
		art = p.fetchArt(ctx, []card.Card{c})[0]
	}

	suit, isMinor := strings.CutPrefix(c.NameSuit, "of ")

	info := []string{colorize.CyanString("Card: ") + colorize.HiWhiteString("%s", c.AltText())}
	if isMinor {
		info = append(info,
			colorize.CyanString("Type: ")+colorize.HiWhiteString("Minor Arcana · %s", arcanaSymbol(true)),
			colorize.CyanString("Suit: ")+colorize.HiWhiteString("%s · %s", suit, suitSymbol(suit)),
			colorize.CyanString("Rank: ")+colorize.HiWhiteString("%s", c.Number),
		)
	} else {
		info = append(info,
			colorize.CyanString("Type: ")+colorize.HiWhiteString("Major Arcana · %s", arcanaSymbol(false)),
		)
	}
	if c.IsReversed() {
		info = append(info, colorize.CyanString("Pose: ")+colorize.MagentaString("%s", c.Reversed))
	} else {
		info = append(info, colorize.CyanString("Pose: ")+colorize.HiWhiteString("Upright"))
	}
	if c.Image != "" {
		info = append(info, colorize.CyanString("Image:"))
		for _, l := range wrapText(c.Image, p.terminalWidth()-p.artWidth()-8) {
			info = append(info, colorize.HiBlackString(l))
		}
	}

	fmt.Fprintln(p.Out)
	if art != "" {
		p.printBeside(art, info)
	} else {
		for _, line := range info {
			fmt.Fprintln(p.Out, "  "+line)
		}
	}
	fmt.Fprintln(p.Out)
	return nil
}

// suitSymbol returns a Nerd Font glyph for a minor arcana suit
func suitSymbol(suit string) string {
	switch strings.ToLower(suit) {
	case "wands":
		return ""
	case "cups":
		return ""
	case "swords":
		return "󰞇"
	case "pentacles":
		return "󱙧"
	default:
		return "•"
	}
}

// arcanaSymbol returns a glyph for the arcana type
func arcanaSymbol(isMinor bool) string {
	if isMinor {
		return "󱀝"
	}
	return ""
}
