package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arcanaland/shuffledraw/internal/draw"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.NumCards != draw.DefaultNumCards {
		t.Errorf("Expected default num_cards %d, got %d", draw.DefaultNumCards, cfg.NumCards)
	}
	if _, err := os.Stat(GetConfigFilePath()); !os.IsNotExist(err) {
		t.Error("Expected LoadConfig not to create the config file")
	}
}

func TestInitAndSet(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if _, err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if GetConfigFilePath() != filepath.Join(dir, "shuffledraw", "config.toml") {
		t.Errorf("Unexpected config path %s", GetConfigFilePath())
	}

	if err := Set("api_url", "https://draw.example.com"); err != nil {
		t.Fatalf("Set api_url failed: %v", err)
	}
	if err := Set("deck_size", "major"); err != nil {
		t.Fatalf("Set deck_size failed: %v", err)
	}
	if err := Set("num_cards", "3"); err != nil {
		t.Fatalf("Set num_cards failed: %v", err)
	}
	if err := Set("request_timeout", "15s"); err != nil {
		t.Fatalf("Set request_timeout failed: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIURL != "https://draw.example.com" {
		t.Errorf("Expected api_url to persist, got %q", cfg.APIURL)
	}
	if cfg.DeckSize != string(draw.MajorArcanaOnly) {
		t.Errorf("Expected canonical deck size, got %q", cfg.DeckSize)
	}
	timeout, err := cfg.Timeout()
	if err != nil || timeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %v (%v)", timeout, err)
	}

	req := cfg.DefaultRequest()
	if req.DeckSize != draw.MajorArcanaOnly || req.NumCards != 3 || req.DeckReverse != draw.UprightAndReversed {
		t.Errorf("Unexpected default request %+v", req)
	}
}

func TestSetRejectsBadValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		key   string
		value string
	}{
		{"num_cards", "0"},
		{"num_cards", "many"},
		{"deck_size", "tiny"},
		{"deck_reverse", "sideways"},
		{"request_timeout", "soon"},
		{"colour", "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := Set(tt.key, tt.value); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestResolveAPIURL(t *testing.T) {
	cfg := &Config{APIURL: "https://from-file"}

	t.Setenv(APIURLEnv, "")
	if got := cfg.ResolveAPIURL("https://from-flag"); got != "https://from-flag" {
		t.Errorf("Expected flag to win, got %s", got)
	}
	if got := cfg.ResolveAPIURL(""); got != "https://from-file" {
		t.Errorf("Expected config file value, got %s", got)
	}
	if got := (&Config{}).ResolveAPIURL(""); got != DefaultAPIURL {
		t.Errorf("Expected build-time default, got %s", got)
	}

	t.Setenv(APIURLEnv, "https://from-env")
	if got := cfg.ResolveAPIURL(""); got != "https://from-env" {
		t.Errorf("Expected env to beat config file, got %s", got)
	}
}

func TestDefaultRequestIgnoresBadValues(t *testing.T) {
	cfg := &Config{DeckSize: "bogus", DeckReverse: "", NumCards: -2}
	if got := cfg.DefaultRequest(); got != draw.DefaultRequest() {
		t.Errorf("Expected built-in defaults, got %+v", got)
	}
}
