package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/puzzle"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [year]",
		Short: "Show the registered days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := puzzle.Years()
			if len(args) == 1 {
				y, err := parseArg("year", args[0])
				if err != nil {
					return err
				}
				years = []int{y}
			}
			w := cmd.OutOrStdout()
			for _, y := range years {
				days := puzzle.Days(y)
				if len(days) == 0 {
					return fmt.Errorf("%w: nothing registered for %d", puzzle.ErrUnknownPuzzle, y)
				}
				parts := make([]string, len(days))
				for i, d := range days {
					parts[i] = fmt.Sprintf("%d", d)
				}
				fmt.Fprintf(w, "%d: %s\n", y, strings.Join(parts, " "))
			}
			return nil
		},
	}
}
