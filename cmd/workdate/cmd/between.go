package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBetweenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "between <from> <to>",
		Short: "Count working hours between two UTC instants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.environment()
			if err != nil {
				return err
			}

			from, err := parseInstant(env.schedule, args[0])
			if err != nil {
				return err
			}
			to, err := parseInstant(env.schedule, args[1])
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			holidays, err := env.holidays(ctx)
			if err != nil {
				return err
			}

			d := env.schedule.BusinessDuration(from, to, holidays)
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", d.Hours())
			return nil
		},
	}
}
