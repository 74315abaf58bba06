package cmd

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/working-date-go/internal/domain/workingdate"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
	workingDateService "github.com/cmlabs-hris/working-date-go/internal/service/workingdate"
	"github.com/spf13/cobra"
)

func newComputeCmd(opts *options) *cobra.Command {
	var days, hours, date string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Add working days and hours to an instant",
		Example: `  workdate compute --days 5 --hours 4 --date 2025-04-10T15:00:00Z
  workdate compute --hours 3 --holidays-file holidays.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.environment()
			if err != nil {
				return err
			}

			req := workingdate.WorkingDateRequest{}
			if cmd.Flags().Changed("days") {
				req.Days = &days
			}
			if cmd.Flags().Changed("hours") {
				req.Hours = &hours
			}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			holidays, err := env.holidays(ctx)
			if err != nil {
				return err
			}

			svc := workingDateService.NewWorkingDateService(env.schedule, staticProvider(holidays))
			resp, err := svc.Compute(ctx, req)
			if err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					return errors.New(verrs.First())
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "working days to add (positive integer)")
	cmd.Flags().StringVar(&hours, "hours", "", "working hours to add (positive integer)")
	cmd.Flags().StringVar(&date, "date", "", "start instant in UTC, e.g. 2025-04-10T15:00:00Z (default: now)")

	return cmd
}
