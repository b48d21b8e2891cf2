// Package tui is the interactive terminal front end.
package tui

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/display"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// Form fields in focus order
const (
	fieldDeckSize = iota
	fieldDeckReverse
	fieldNumCards
	fieldSubmit
	numFields
)

// Art size for each card box, in cells
const (
	artWidth  = 14
	artHeight = 10
)

// Options configures the TUI
type Options struct {
	Drawer      app.Drawer
	DefaultForm draw.Request
	// ShowArt downloads card images and renders them as ANSI art
	ShowArt    bool
	HTTPClient *http.Client
	Cache      *display.ArtCache
}

// Model is the Bubble Tea model. View state lives in app.State and only
// changes through the app transitions.
type Model struct {
	ctx     context.Context
	opts    Options
	state   app.State
	art     []string
	spinner spinner.Model
	count   textinput.Model

	focus       int
	deckSize    int
	deckReverse int
	showLicense bool
	quitting    bool
	width       int
	height      int
}

// drawnMsg settles a draw started by submit
type drawnMsg struct {
	result *draw.Result
	art    []string
	err    error
}

// NewModel returns a model showing the options form
func NewModel(opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	form := opts.DefaultForm
	if form.NumCards < 1 {
		form = draw.DefaultRequest()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4
	ti.Width = 6
	ti.SetValue(strconv.Itoa(form.NumCards))
	ti.CursorEnd()

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Model{
		ctx:         context.Background(),
		opts:        opts,
		spinner:     s,
		count:       ti,
		deckSize:    indexOf(draw.DeckSizes, form.DeckSize),
		deckReverse: indexOf(draw.DeckReverses, form.DeckReverse),
	}
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

// State returns the current view state
func (m *Model) State() app.State {
	return m.state
}

// Request returns the draw request the form currently describes
func (m *Model) Request() draw.Request {
	n, err := strconv.Atoi(m.count.Value())
	if err != nil {
		n = 0
	}
	return draw.Request{
		DeckSize:    draw.DeckSizes[m.deckSize],
		DeckReverse: draw.DeckReverses[m.deckReverse],
		NumCards:    n,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case drawnMsg:
		m.state = app.CompleteDraw(m.state, msg.result, msg.err)
		m.art = msg.art
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == fieldNumCards {
		var cmd tea.Cmd
		m.count, cmd = m.count.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showLicense {
		switch key {
		case "l", "esc", "q", "enter":
			m.showLicense = false
		}
		return m, nil
	}

	if m.state.Err != "" && (key == "x" || key == "ctrl+x") {
		m.state = app.DismissError(m.state)
		return m, nil
	}

	if m.state.Mode == app.ModeResults {
		switch key {
		case "r", "esc", "b", "backspace":
			m.state = app.Reset(m.state)
			m.art = nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// The form is inert while a draw is loading
	if m.state.Loading {
		return m, nil
	}

	switch key {
	case "tab", "down":
		m.setFocus((m.focus + 1) % numFields)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + numFields - 1) % numFields)
		return m, nil
	case "enter":
		return m, m.submit()
	}

	if m.focus == fieldNumCards {
		if msg.Type == tea.KeyRunes && !digitsOnly(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.count, cmd = m.count.Update(msg)
		return m, cmd
	}

	switch key {
	case "left":
		m.cycle(-1)
	case "right", " ":
		m.cycle(1)
	case "l", "?":
		m.showLicense = true
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m *Model) setFocus(field int) {
	m.focus = field
	if field == fieldNumCards {
		m.count.Focus()
	} else {
		m.count.Blur()
	}
}

func (m *Model) cycle(delta int) {
	switch m.focus {
	case fieldDeckSize:
		m.deckSize = (m.deckSize + len(draw.DeckSizes) + delta) % len(draw.DeckSizes)
	case fieldDeckReverse:
		m.deckReverse = (m.deckReverse + len(draw.DeckReverses) + delta) % len(draw.DeckReverses)
	}
}

// submit starts a draw and returns the commands that settle it
func (m *Model) submit() tea.Cmd {
	req := m.Request()
	m.state = app.BeginDraw(m.state)
	return tea.Batch(m.spinner.Tick, m.drawCmd(req))
}

func (m *Model) drawCmd(req draw.Request) tea.Cmd {
	ctx := m.ctx
	drawer := m.opts.Drawer
	showArt := m.opts.ShowArt
	client := m.opts.HTTPClient
	cache := m.opts.Cache
	return func() tea.Msg {
		if err := req.Validate(); err != nil {
			return drawnMsg{err: err}
		}
		result, err := drawer.DrawCards(ctx, req)
		if err != nil || !showArt {
			return drawnMsg{result: result, err: err}
		}
		return drawnMsg{result: result, art: fetchArt(ctx, client, cache, result)}
	}
}

// fetchArt renders each card image; cards whose image fails get none
func fetchArt(ctx context.Context, client *http.Client, cache *display.ArtCache, result *draw.Result) []string {
	art := make([]string, len(result.DrawnCards))
	for i, c := range result.DrawnCards {
		if cached, ok := cache.Load(c.Image, artWidth, artHeight, c.IsReversed()); ok {
			art[i] = cached
			continue
		}
		img, err := display.FetchImage(ctx, client, c.Image)
		if err != nil {
			slog.Warn("Skipping card art", "card", c.Label(), "err", err)
			continue
		}
		art[i] = display.ImageToAnsi(img, artWidth, artHeight, c.IsReversed())
		if err := cache.Store(c.Image, artWidth, artHeight, c.IsReversed(), art[i]); err != nil {
			slog.Warn("Unable to cache card art", "err", err)
		}
	}
	return art
}

// Start runs the TUI until the user quits or ctx is cancelled
func Start(ctx context.Context, opts Options) error {
	m := NewModel(opts)
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
