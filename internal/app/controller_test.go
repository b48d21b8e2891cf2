package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arcanaland/shuffledraw/internal/api"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// fakeDrawer records calls and returns a canned result
type fakeDrawer struct {
	result  *draw.Result
	err     error
	calls   int
	seen    draw.Request
	observe func()
	block   chan struct{}
}

func (f *fakeDrawer) DrawCards(ctx context.Context, req draw.Request) (*draw.Result, error) {
	f.calls++
	f.seen = req
	if f.observe != nil {
		f.observe()
	}
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func TestSubmitDrawSuccess(t *testing.T) {
	drawer := &fakeDrawer{result: &draw.Result{DrawnCards: sampleCards(3), Message: "ok"}}
	c := NewController(drawer)

	var loadingDuringCall bool
	drawer.observe = func() { loadingDuringCall = c.State().Loading }

	req := draw.Request{DeckSize: draw.MinorArcanaOnly, DeckReverse: draw.UprightOnly, NumCards: 3}
	s, err := c.SubmitDraw(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !loadingDuringCall {
		t.Error("Expected Loading to be set while the draw is in flight")
	}
	if s.Loading {
		t.Error("Expected Loading cleared after the draw settles")
	}
	if drawer.seen != req {
		t.Errorf("Expected request forwarded verbatim, got %+v", drawer.seen)
	}
	if s.Mode != ModeResults || len(s.Cards) != 3 || s.Message != "ok" {
		t.Errorf("Unexpected state %+v", s)
	}
}

func TestSubmitDrawFailureStaysOnOptions(t *testing.T) {
	drawer := &fakeDrawer{err: &api.Error{Kind: api.KindService, StatusCode: 400, Message: "Deck too small"}}
	c := NewController(drawer)

	s, err := c.SubmitDraw(context.Background(), draw.DefaultRequest())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Mode != ModeOptions {
		t.Errorf("Expected options mode, got %s", s.Mode)
	}
	if s.Err != "Deck too small" {
		t.Errorf("Expected banner 'Deck too small', got %q", s.Err)
	}
	if s.Loading {
		t.Error("Expected Loading cleared")
	}

	// The form stays usable after a failure
	drawer.err = nil
	drawer.result = &draw.Result{DrawnCards: sampleCards(1)}
	s, _ = c.SubmitDraw(context.Background(), draw.DefaultRequest())
	if s.Mode != ModeResults || s.Err != "" {
		t.Errorf("Expected recovery to results view, got %+v", s)
	}
}

func TestSubmitDrawRejectsInvalidCount(t *testing.T) {
	drawer := &fakeDrawer{result: &draw.Result{}}
	c := NewController(drawer)

	s, err := c.SubmitDraw(context.Background(), draw.Request{DeckSize: draw.FullDeck, DeckReverse: draw.UprightOnly, NumCards: 0})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if drawer.calls != 0 {
		t.Errorf("Expected service not to be called, got %d calls", drawer.calls)
	}
	if s.Err != draw.ErrInvalidNumCards.Error() {
		t.Errorf("Expected validation banner, got %q", s.Err)
	}
	if s.Loading || s.Mode != ModeOptions {
		t.Errorf("Unexpected state %+v", s)
	}
}

func TestSubmitDrawWhileLoading(t *testing.T) {
	drawer := &fakeDrawer{result: &draw.Result{DrawnCards: sampleCards(1)}, block: make(chan struct{})}
	c := NewController(drawer)

	started := make(chan struct{})
	drawer.observe = func() { close(started) }

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.SubmitDraw(context.Background(), draw.DefaultRequest())
	}()
	<-started

	if _, err := c.SubmitDraw(context.Background(), draw.DefaultRequest()); !errors.Is(err, ErrDrawInProgress) {
		t.Errorf("Expected ErrDrawInProgress, got %v", err)
	}

	close(drawer.block)
	wg.Wait()

	if drawer.calls != 1 {
		t.Errorf("Expected exactly one call, got %d", drawer.calls)
	}
	if s := c.State(); s.Loading || s.Mode != ModeResults {
		t.Errorf("Unexpected state %+v", s)
	}
}

func TestControllerResetAndDismiss(t *testing.T) {
	drawer := &fakeDrawer{result: &draw.Result{DrawnCards: sampleCards(2), Message: "msg"}}
	c := NewController(drawer)
	c.SubmitDraw(context.Background(), draw.DefaultRequest())

	s := c.Reset()
	if s.Mode != ModeOptions || len(s.Cards) != 0 || s.Message != "" {
		t.Errorf("Expected reset state, got %+v", s)
	}

	drawer.result = nil
	drawer.err = errors.New("network down")
	c.SubmitDraw(context.Background(), draw.DefaultRequest())

	s = c.DismissError()
	if s.Err != "" || s.Mode != ModeOptions {
		t.Errorf("Expected error dismissed in options mode, got %+v", s)
	}
}
