package cmd

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/config"
	"github.com/arcanaland/shuffledraw/internal/display"
	"github.com/arcanaland/shuffledraw/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Draw cards in an interactive terminal UI",
	Long: `Tui opens a full-screen terminal interface with the deck options form.
Draw as many times as you like; press r to go back to the form from the
results and q to quit.

Logs are written to the shuffledraw.log file in the XDG state directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog := logToFile()
		defer closeLog()

		client, cfg, err := newAPIClient()
		if err != nil {
			return err
		}

		err = tui.Start(cmd.Context(), tuiOptions(cmd, client, cfg))
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().Bool("art", false, "Render card images as ANSI art")
	tuiCmd.Flags().Bool("no-cache", false, "Do not read or write the ANSI art cache")
}

func tuiOptions(cmd *cobra.Command, drawer app.Drawer, cfg *config.Config) tui.Options {
	showArt, _ := cmd.Flags().GetBool("art")
	opts := tui.Options{
		Drawer:      drawer,
		DefaultForm: cfg.DefaultRequest(),
		ShowArt:     showArt,
		HTTPClient:  http.DefaultClient,
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		opts.Cache = display.NewArtCache(config.GetCacheDir())
	}
	return opts
}

// logToFile points the default logger at the log file so output does not
// tear the alternate screen. Logs are discarded if the file can't be opened.
func logToFile() func() {
	level, _ := parseLogLevel(logLevelFlag)
	opts := &slog.HandlerOptions{Level: level}

	path := config.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return func() {}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(file, opts)))
	return func() { file.Close() }
}
