package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/draw"
	"github.com/arcanaland/shuffledraw/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a saved reading",
	Long: `Validate checks a reading saved with 'shuffledraw draw --format json|yaml|toml'.
It verifies that every card belongs to the deck, that no card was dealt twice
and that images and reversal markers are well formed.

Pass the options the reading was drawn with to also check the card count,
the deck and the reversals against them.`,
	Example: `  shuffledraw draw --format json > reading.json
  shuffledraw validate reading.json

  shuffledraw validate reading.yaml --deck-size major --reverse upright --count 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		readingPath := args[0]

		// Check if path exists
		if _, err := os.Stat(readingPath); os.IsNotExist(err) {
			return fmt.Errorf("reading not found: %s", readingPath)
		}

		v := validator.NewValidator(readingPath)
		if cmd.Flags().Changed("deck-size") || cmd.Flags().Changed("reverse") || cmd.Flags().Changed("count") {
			req, err := drawRequestFromFlags(cmd, nil)
			if err != nil {
				return err
			}
			v.Expect = &req
		}

		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Reading '%s' is valid.\n", readingPath)
		} else {
			fmt.Printf("❌ Reading '%s' has %d validation errors:\n", readingPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("deck-size", "d", string(draw.FullDeck), "Deck the reading was drawn from (full, major, minor)")
	validateCmd.Flags().StringP("reverse", "r", string(draw.UprightAndReversed), "Reversed cards allowed (upright, both)")
	validateCmd.Flags().IntP("count", "n", draw.DefaultNumCards, "Number of cards requested")
}
