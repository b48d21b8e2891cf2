package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/api"
	"github.com/arcanaland/shuffledraw/internal/config"
)

var (
	apiURLFlag   string
	logLevelFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "shuffledraw",
	Short: "Draw tarot cards from a tarot draw service",
	Long: `Shuffledraw draws tarot cards from a remote draw service.

Pick a deck (full, major or minor arcana), whether cards may come up
reversed and how many to draw. The cards can be drawn from the browser
(shuffledraw serve), an interactive terminal UI (shuffledraw tui) or a
single command (shuffledraw draw).

The draw service URL is taken from --api-url, then $SHUFFLEDRAW_API_URL,
then api_url in the config file. A .env file in the working directory is
loaded first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
		return setupLogging()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Draw service base URL")
	RootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func setupLogging() error {
	level, err := parseLogLevel(logLevelFlag)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// newAPIClient loads the config file and returns a client for the
// resolved draw service URL along with the config
func newAPIClient() (*api.Client, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, nil, err
	}

	baseURL := cfg.ResolveAPIURL(apiURLFlag)
	slog.Debug("Using draw service", "url", baseURL, "timeout", timeout)
	return api.NewClient(baseURL, timeout), cfg, nil
}
