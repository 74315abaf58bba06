package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newHolidaysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "Print the holiday list in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.environment()
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			dates, err := env.source.Fetch(ctx)
			if err != nil {
				return err
			}
			sort.Strings(dates)

			out := cmd.OutOrStdout()
			for _, d := range dates {
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}
}
