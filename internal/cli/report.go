package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/flightlog/internal/calculator"
)

func (a *App) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show logged hours",
	}

	students := &cobra.Command{
		Use:   "students",
		Short: "Total hours per student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			totals, err := a.client.HoursByStudent(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STUDENT\tHOURS")
			for _, t := range totals {
				fmt.Fprintf(tw, "%s\t%s\n", t.Student, calculator.FormatHours(t.TotalHours))
			}
			return tw.Flush()
		},
	}

	aircraft := &cobra.Command{
		Use:   "aircraft",
		Short: "Total hours per aircraft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			totals, err := a.client.HoursByAircraft(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "AIRCRAFT\tHOURS")
			for _, t := range totals {
				fmt.Fprintf(tw, "%s\t%s\n", t.Aircraft, calculator.FormatHours(t.TotalHours))
			}
			return tw.Flush()
		},
	}

	daily := &cobra.Command{
		Use:   "daily [DATE]",
		Short: "Hours flown on one day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := calculator.Today()
			if len(args) == 1 {
				day = args[0]
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			hours, err := a.client.DailyHours(ctx, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", day, calculator.FormatHours(hours))
			return nil
		},
	}

	monthly := &cobra.Command{
		Use:   "monthly [MONTH]",
		Short: "Hours flown in one month (default this month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := calculator.ThisMonth()
			if len(args) == 1 {
				month = args[0]
			}
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			hours, err := a.client.MonthlyHours(ctx, month)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", month, calculator.FormatHours(hours))
			return nil
		},
	}

	cmd.AddCommand(students, aircraft, daily, monthly)
	return cmd
}

func (a *App) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summary of today and this month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			d, err := a.client.Dashboard(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d.Profile == nil {
				fmt.Fprintln(out, `Welcome! Set your name with "flightlog profile set NAME".`)
			} else {
				fmt.Fprintf(out, "Welcome, %s\n", d.Profile.Name)
			}
			fmt.Fprintf(out, "Today (%s):\t%s\n", d.Today, calculator.FormatHours(d.TodayHours))
			fmt.Fprintf(out, "Month (%s):\t%s\n", d.Month, calculator.FormatHours(d.MonthHours))
			return nil
		},
	}
}
