package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/config"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

func newDrawFlagsCmd() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().StringP("deck-size", "d", "", "")
	c.Flags().StringP("reverse", "r", "", "")
	c.Flags().IntP("count", "n", 0, "")
	return c
}

func TestDrawRequestFromFlags(t *testing.T) {
	cfg := &config.Config{DeckSize: "Minor Arcana only", DeckReverse: "Upright only", NumCards: 5}

	tests := []struct {
		name    string
		flags   map[string]string
		want    draw.Request
		wantErr bool
	}{
		{
			name:  "config defaults",
			flags: nil,
			want:  draw.Request{DeckSize: draw.MinorArcanaOnly, DeckReverse: draw.UprightOnly, NumCards: 5},
		},
		{
			name:  "flags override",
			flags: map[string]string{"deck-size": "major", "reverse": "both", "count": "3"},
			want:  draw.Request{DeckSize: draw.MajorArcanaOnly, DeckReverse: draw.UprightAndReversed, NumCards: 3},
		},
		{
			name:  "zero count is passed through",
			flags: map[string]string{"count": "0"},
			want:  draw.Request{DeckSize: draw.MinorArcanaOnly, DeckReverse: draw.UprightOnly, NumCards: 0},
		},
		{
			name:    "unknown deck",
			flags:   map[string]string{"deck-size": "tiny"},
			wantErr: true,
		},
		{
			name:    "unknown reversal",
			flags:   map[string]string{"reverse": "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDrawFlagsCmd()
			for k, v := range tt.flags {
				if err := c.Flags().Set(k, v); err != nil {
					t.Fatalf("Failed to set %s: %v", k, err)
				}
			}

			got, err := drawRequestFromFlags(c, cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDrawRequestFromFlagsWithoutConfig(t *testing.T) {
	got, err := drawRequestFromFlags(newDrawFlagsCmd(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != draw.DefaultRequest() {
		t.Errorf("Expected built-in defaults, got %+v", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("parseLogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseLogLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"draw", "serve", "tui", "backend", "config", "show", "validate"} {
		if c, _, err := RootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestTUIOptionsArtCache(t *testing.T) {
	tests := []struct {
		name      string
		flags     map[string]string
		wantCache bool
		wantArt   bool
	}{
		{"defaults", nil, true, false},
		{"art with cache", map[string]string{"art": "true"}, true, true},
		{"no cache", map[string]string{"art": "true", "no-cache": "true"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{}
			c.Flags().Bool("art", false, "")
			c.Flags().Bool("no-cache", false, "")
			for k, v := range tt.flags {
				if err := c.Flags().Set(k, v); err != nil {
					t.Fatalf("Failed to set %s: %v", k, err)
				}
			}

			opts := tuiOptions(c, nil, nil)
			if (opts.Cache != nil) != tt.wantCache {
				t.Errorf("Expected cache set=%v, got %v", tt.wantCache, opts.Cache != nil)
			}
			if opts.ShowArt != tt.wantArt {
				t.Errorf("Expected ShowArt=%v, got %v", tt.wantArt, opts.ShowArt)
			}
			if opts.DefaultForm != draw.DefaultRequest() {
				t.Errorf("Expected default form, got %+v", opts.DefaultForm)
			}
		})
	}
}

func TestTUICommandHasNoCacheFlag(t *testing.T) {
	if tuiCmd.Flags().Lookup("no-cache") == nil {
		t.Error("Expected tui to accept --no-cache")
	}
}
