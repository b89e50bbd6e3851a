package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fetchCmd(a *app) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "fetch <year> <day>",
		Short: "Download a day's input into the cache",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseArg("year", args[0])
			if err != nil {
				return err
			}
			day, err := parseArg("day", args[1])
			if err != nil {
				return err
			}

			f := a.fetcher()
			if force {
				if err := f.Delete(year, day); err != nil {
					return err
				}
			}
			path, downloaded, err := f.Fetch(cmd.Context(), year, day)
			if err != nil {
				return err
			}
			a.log.Info("input ready", "path", path, "downloaded", downloaded)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "discard the cached copy first")
	return c
}
