package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/config"
	"github.com/arcanaland/shuffledraw/internal/display"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw cards once and print them",
	Long: `Draw submits a single request to the draw service and prints the cards
in the order they were dealt, followed by the service's message.

Flags not given fall back to the defaults in the config file.`,
	Example: `  # Draw three cards from the major arcana, reversals allowed
  shuffledraw draw --deck-size major --reverse both --count 3

  # Show the card images as ANSI art
  shuffledraw draw --art

  # Save a reading for later
  shuffledraw draw --format json > reading.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newAPIClient()
		if err != nil {
			return err
		}

		req, err := drawRequestFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		showArt, _ := cmd.Flags().GetBool("art")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		switch format {
		case display.FormatText, display.FormatJSON, display.FormatYAML, display.FormatTOML:
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		controller := app.NewController(client)
		state, err := controller.SubmitDraw(cmd.Context(), req)
		if err != nil {
			return err
		}
		if state.Err != "" {
			return errors.New(state.Err)
		}

		result := &draw.Result{DrawnCards: state.Cards, Message: state.Message}
		if format != display.FormatText {
			return display.Encode(os.Stdout, format, result)
		}

		printer := display.NewPrinter(showArt)
		if !noCache {
			printer.Cache = display.NewArtCache(config.GetCacheDir())
		}
		return printer.Print(cmd.Context(), result)
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringP("deck-size", "d", "", "Deck to draw from (full, major, minor)")
	drawCmd.Flags().StringP("reverse", "r", "", "Reversed cards (upright, both)")
	drawCmd.Flags().IntP("count", "n", 0, "Number of cards to draw")
	drawCmd.Flags().Bool("art", false, "Render card images as ANSI art")
	drawCmd.Flags().Bool("no-cache", false, "Do not read or write the ANSI art cache")
	drawCmd.Flags().StringP("format", "f", display.FormatText, "Output format (text, json, yaml, toml)")
}

// drawRequestFromFlags starts from the configured form defaults and
// applies any flags that were set
func drawRequestFromFlags(cmd *cobra.Command, cfg *config.Config) (draw.Request, error) {
	req := cfg.DefaultRequest()

	if cmd.Flags().Changed("deck-size") {
		value, _ := cmd.Flags().GetString("deck-size")
		size, err := draw.ParseDeckSize(value)
		if err != nil {
			return req, err
		}
		req.DeckSize = size
	}

	if cmd.Flags().Changed("reverse") {
		value, _ := cmd.Flags().GetString("reverse")
		reverse, err := draw.ParseDeckReverse(value)
		if err != nil {
			return req, err
		}
		req.DeckReverse = reverse
	}

	if cmd.Flags().Changed("count") {
		req.NumCards, _ = cmd.Flags().GetInt("count")
	}

	return req, nil
}
