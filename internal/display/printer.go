// Package display prints draw results to a terminal.
package display

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// Art dimensions in terminal cells
const (
	DefaultArtWidth  = 20
	DefaultArtHeight = 16
)

// Printer renders a draw result as text, optionally with ANSI card art
type Printer struct {
	Out        io.Writer
	Width      int // terminal width; 0 means detect
	ShowArt    bool
	ArtWidth   int
	ArtHeight  int
	HTTPClient *http.Client
	Cache      *ArtCache // optional
}

// NewPrinter returns a printer writing to stdout
func NewPrinter(showArt bool) *Printer {
	return &Printer{
		Out:        os.Stdout,
		ShowArt:    showArt,
		ArtWidth:   DefaultArtWidth,
		ArtHeight:  DefaultArtHeight,
		HTTPClient: http.DefaultClient,
	}
}

// Print writes every card in received order followed by the message
func (p *Printer) Print(ctx context.Context, result *draw.Result) error {
	width := p.terminalWidth()

	var art []string
	if p.ShowArt && len(result.DrawnCards) > 0 {
		art = p.fetchArt(ctx, result.DrawnCards)
	}

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, colorize.New(colorize.Bold).Sprint("Tarot Draw Result"))
	fmt.Fprintln(p.Out)

	if len(result.DrawnCards) == 0 {
		fmt.Fprintln(p.Out, colorize.HiBlackString("  No cards were drawn."))
	}

	for i, c := range result.DrawnCards {
		info := cardLines(i, c, width)
		if art != nil && art[i] != "" {
			p.printBeside(art[i], info)
		} else {
			for _, line := range info {
				fmt.Fprintln(p.Out, "  "+line)
			}
		}
		fmt.Fprintln(p.Out)
	}

	if result.Message != "" {
		for _, line := range wrapText(result.Message, width-4) {
			fmt.Fprintln(p.Out, "  "+colorize.YellowString(line))
		}
		fmt.Fprintln(p.Out)
	}

	return nil
}

// cardLines returns the info column for a card
func cardLines(i int, c card.Card, width int) []string {
	title := colorize.CyanString("%2d. ", i+1) + colorize.HiWhiteString("%s %s", c.Number, c.NameSuit)
	if c.IsReversed() {
		title += " " + colorize.MagentaString(c.Reversed)
	}
	lines := []string{title}
	for _, l := range wrapText(c.Image, width-8) {
		lines = append(lines, "    "+colorize.HiBlackString(l))
	}
	return lines
}

// fetchArt downloads and converts every card image concurrently. Cards
// whose image cannot be fetched get no art.
func (p *Printer) fetchArt(ctx context.Context, cards []card.Card) []string {
	art := make([]string, len(cards))
	client := p.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, c := range cards {
		g.Go(func() error {
			w, h, flip := p.artWidth(), p.artHeight(), c.IsReversed()
			if cached, ok := p.Cache.Load(c.Image, w, h, flip); ok {
				art[i] = cached
				return nil
			}
			img, err := FetchImage(ctx, client, c.Image)
			if err != nil {
				slog.Warn("Skipping card art", "card", c.Label(), "err", err)
				return nil
			}
			art[i] = ImageToAnsi(img, w, h, flip)
			if err := p.Cache.Store(c.Image, w, h, flip, art[i]); err != nil {
				slog.Warn("Unable to cache card art", "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return art
}

// printBeside prints ANSI art on the left and info on the right
func (p *Printer) printBeside(ansiArt string, info []string) {
	ansiLines := strings.Split(strings.TrimRight(ansiArt, "\n"), "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		if w := len([]rune(stripAnsi(line))); w > maxAnsiWidth {
			maxAnsiWidth = w
		}
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing

	maxLines := max(len(ansiLines), len(info))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(p.Out, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(p.Out, ansiLines[i])
			visibleWidth := len([]rune(stripAnsi(ansiLines[i])))
			fmt.Fprint(p.Out, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(p.Out, strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			fmt.Fprint(p.Out, info[i])
		}
		fmt.Fprintln(p.Out)
	}
}

func (p *Printer) terminalWidth() int {
	if p.Width > 0 {
		return p.Width
	}
	if f, ok := p.Out.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

func (p *Printer) artWidth() int {
	if p.ArtWidth > 0 {
		return p.ArtWidth
	}
	return DefaultArtWidth
}

func (p *Printer) artHeight() int {
	if p.ArtHeight > 0 {
		return p.ArtHeight
	}
	return DefaultArtHeight
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
