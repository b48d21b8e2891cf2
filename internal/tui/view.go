package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
	"github.com/arcanaland/shuffledraw/internal/license"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tarot Card Shuffle Draw"))
	b.WriteString("\n\n")

	if m.showLicense {
		b.WriteString(license.Notice)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("l/esc: back"))
		return b.String()
	}

	if m.state.Err != "" {
		b.WriteString(bannerStyle.Render(m.state.Err + "  (x to dismiss)"))
		b.WriteString("\n\n")
	}

	switch m.state.Mode {
	case app.ModeResults:
		b.WriteString(m.resultsView())
	default:
		b.WriteString(m.optionsView())
	}
	return b.String()
}

func (m *Model) optionsView() string {
	rows := []string{
		m.field(fieldDeckSize, "Deck size", choice(draw.DeckSizes, m.deckSize)),
		m.field(fieldDeckReverse, "Reversals", choice(draw.DeckReverses, m.deckReverse)),
		m.field(fieldNumCards, "Cards", m.count.View()),
	}

	button := buttonStyle
	if m.focus == fieldSubmit {
		button = button.BorderForeground(highlight).Bold(true)
	}
	label := "Draw Cards"
	if m.state.Loading {
		label = m.spinner.View() + " Drawing..."
	}
	rows = append(rows, "", button.Render(label))

	help := "tab/↑↓: move • ←/→: change • enter: draw • l: license • q: quit"
	rows = append(rows, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func choice[T ~string](options []T, selected int) string {
	return fmt.Sprintf("‹ %s ›", options[selected])
}

func (m *Model) field(index int, label, value string) string {
	marker := "  "
	if m.focus == index {
		marker = focusedStyle.Render("> ")
		value = focusedStyle.Render(value)
	}
	return marker + labelStyle.Render(label) + value
}

func (m *Model) resultsView() string {
	var b strings.Builder
	if len(m.state.Cards) == 0 {
		b.WriteString("No cards were drawn.\n")
	} else {
		b.WriteString(m.cardGrid())
	}

	if m.state.Message != "" {
		b.WriteString(messageStyle.Render(m.state.Message))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("r/esc: back to home • q: quit"))
	return b.String()
}

// cardGrid lays the card boxes out in rows that fit the window
func (m *Model) cardGrid() string {
	boxes := make([]string, len(m.state.Cards))
	for i, c := range m.state.Cards {
		art := ""
		if i < len(m.art) {
			art = m.art[i]
		}
		boxes[i] = cardBox(i, c, art)
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, box := range boxes {
		w := lipgloss.Width(box)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, box)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func cardBox(i int, c card.Card, art string) string {
	lines := []string{fmt.Sprintf("%d. %s", i+1, c.Number), c.NameSuit}
	if c.IsReversed() {
		lines = append(lines, reversedStyle.Render(c.Reversed))
	}
	if art != "" {
		lines = append(lines, art)
	}
	return cardStyle.Width(artWidth + 4).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
