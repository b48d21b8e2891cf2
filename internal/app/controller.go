package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/arcanaland/shuffledraw/internal/draw"
)

// ErrDrawInProgress is returned when a draw is submitted while another is loading
var ErrDrawInProgress = errors.New("a draw is already in progress")

// Drawer performs a draw against the service
type Drawer interface {
	DrawCards(ctx context.Context, req draw.Request) (*draw.Result, error)
}

// Controller owns a State and routes user actions to the Drawer
type Controller struct {
	drawer Drawer

	mu    sync.Mutex
	state State
}

// NewController returns a controller in the options view
func NewController(drawer Drawer) *Controller {
	return &Controller{drawer: drawer}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Cards = append(s.Cards[:0:0], s.Cards...)
	return s
}

// SubmitDraw runs one draw and returns the settled state. The lock is not
// held while the service is called so State stays readable meanwhile.
func (c *Controller) SubmitDraw(ctx context.Context, req draw.Request) (State, error) {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return c.State(), ErrDrawInProgress
	}
	c.state = BeginDraw(c.state)
	c.mu.Unlock()

	var (
		result *draw.Result
		err    error
	)
	if err = req.Validate(); err == nil {
		result, err = c.drawer.DrawCards(ctx, req)
	}
	if err != nil {
		slog.Warn("Draw failed", "err", err)
	}

	c.mu.Lock()
	c.state = CompleteDraw(c.state, result, err)
	c.mu.Unlock()

	return c.State(), nil
}

// Reset returns to the options view
func (c *Controller) Reset() State {
	c.mu.Lock()
	c.state = Reset(c.state)
	c.mu.Unlock()
	return c.State()
}

// DismissError clears the error banner
func (c *Controller) DismissError() State {
	c.mu.Lock()
	c.state = DismissError(c.state)
	c.mu.Unlock()
	return c.State()
}
