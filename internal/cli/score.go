package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var scoreCmd = &cobra.Command{
	Use:   "score GUESS TARGET",
	Short: "Print the feedback a guess gets against a target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guess, target := game.Normalize(args[0]), game.Normalize(args[1])
		if guess == "" || len(guess) != len(target) {
			return fmt.Errorf("%w: %q and %q differ in length", game.ErrWrongLength, guess, target)
		}
		for _, w := range []string{guess, target} {
			if !game.Validate(w, anyWord{}, len(w)) {
				return fmt.Errorf("%w: %q", game.ErrNotAlphabetic, w)
			}
		}

		fb := game.Score(guess, target)
		out := cmd.OutOrStdout()
		if console.ColorEnabled(out, flagNoColor) {
			styles := console.NewStyles(out, console.DefaultTheme(), true)
			_, err := fmt.Fprintf(out, "%s  %s\n", console.RenderTiles(styles, guess, fb), fb)
			return err
		}
		_, err := fmt.Fprintf(out, "%s %s\n", guess, fb)
		return err
	},
}

// anyWord accepts every word; score checks shape only.
type anyWord struct{}

func (anyWord) Contains(string) bool { return true }

func init() {
	rootCmd.AddCommand(scoreCmd)
}
