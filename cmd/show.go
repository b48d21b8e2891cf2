package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/config"
	"github.com/arcanaland/shuffledraw/internal/deck"
	"github.com/arcanaland/shuffledraw/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Display a card from the deck with ANSI art",
	Long: `Show displays a single tarot card from the deck the draw service deals
from, with its image rendered as ANSI terminal art.

Name a card by its label ("XIII Death", "Ace of Cups") or, for the major
arcana, by its name alone. Card images are fetched from
<image-base-url>/images/<file>; the base defaults to $CLOUDFRONT_URL. Without
an image base URL only the card details are shown.

Examples:
  shuffledraw show death
  shuffledraw show Ace of Cups --reversed
  shuffledraw show "XVII The Star" --image-base-url https://d1234.cloudfront.net`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		c, ok := deck.Find(query)
		if !ok {
			return fmt.Errorf("no card named %q in the deck", query)
		}

		if reversed, _ := cmd.Flags().GetBool("reversed"); reversed {
			c.Reversed = deck.ReversedMarker
		}

		imageBaseURL, _ := cmd.Flags().GetString("image-base-url")
		if imageBaseURL == "" {
			imageBaseURL = os.Getenv(imageBaseURLEnv)
		}
		if imageBaseURL != "" {
			c.Image = strings.TrimRight(imageBaseURL, "/") + "/images/" + c.Image
		}

		noArt, _ := cmd.Flags().GetBool("no-art")
		printer := display.NewPrinter(imageBaseURL != "" && !noArt)
		printer.ArtWidth = 40
		printer.ArtHeight = 32
		if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
			printer.Cache = display.NewArtCache(config.GetCacheDir())
		}

		return printer.PrintCard(cmd.Context(), c)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("reversed", false, "Show the card reversed")
	showCmd.Flags().String("image-base-url", "", "Base URL of the card images (default $"+imageBaseURLEnv+")")
	showCmd.Flags().Bool("no-art", false, "Only show the card details")
	showCmd.Flags().Bool("no-cache", false, "Do not read or write the ANSI art cache")
}
