package cmd

import (
	"fmt"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"github.com/spf13/cobra"
)

func newClassifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [instant]",
		Short: "Show where an instant falls in the working day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.environment()
			if err != nil {
				return err
			}

			var value string
			if len(args) == 1 {
				value = args[0]
			}
			t, err := parseInstant(env.schedule, value)
			if err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			holidays, err := env.holidays(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "local:    %s\n", t.Format("2006-01-02 15:04 Mon MST"))
			fmt.Fprintf(out, "position: %s\n", env.schedule.Classify(t, holidays))
			fmt.Fprintf(out, "backward: %s\n", businesstime.FormatUTC(env.schedule.NormalizeBackward(t, holidays)))
			fmt.Fprintf(out, "forward:  %s\n", businesstime.FormatUTC(env.schedule.NormalizeForward(t, holidays)))
			return nil
		},
	}
}
