package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmynk/flightlog/internal/calculator"
	"github.com/mmynk/flightlog/internal/models"
)

// entryFlags binds the editable fields of a flight entry.
type entryFlags struct {
	date        string
	student     string
	instructor  string
	aircraft    string
	exercise    string
	flightType  string
	takeoff     string
	landing     string
	landingType string
	landings    int64
}

func (f *entryFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", calculator.Today(), "Flight date (YYYY-MM-DD)")
	fs.StringVar(&f.student, "student", "", "Student name")
	fs.StringVar(&f.instructor, "instructor", "", "Instructor name")
	fs.StringVar(&f.aircraft, "aircraft", "", "Aircraft registration")
	fs.StringVar(&f.exercise, "exercise", "", "Exercise")
	fs.StringVar(&f.flightType, "type", string(models.FlightTypeDual), "Flight type (dual|solo)")
	fs.StringVar(&f.takeoff, "takeoff", "", "Takeoff time (HH:MM)")
	fs.StringVar(&f.landing, "landing", "", "Landing time (HH:MM)")
	fs.StringVar(&f.landingType, "landing-type", string(models.LandingTypeDay), "Landing type (day|night)")
	fs.Int64Var(&f.landings, "landings", 1, "Number of landings")
}

// apply copies the flags set on the command line onto e. When all is true
// every flag is applied, including defaults.
func (f *entryFlags) apply(fs *pflag.FlagSet, e *models.FlightEntry, all bool) {
	set := func(name string) bool { return all || fs.Changed(name) }
	if set("date") {
		e.Date = f.date
	}
	if set("student") {
		e.Student = f.student
	}
	if set("instructor") {
		e.Instructor = f.instructor
	}
	if set("aircraft") {
		e.Aircraft = f.aircraft
	}
	if set("exercise") {
		e.Exercise = f.exercise
	}
	if set("type") {
		e.FlightType = models.FlightType(f.flightType)
	}
	if set("takeoff") {
		e.TakeoffTime = f.takeoff
	}
	if set("landing") {
		e.LandingTime = f.landing
	}
	if set("landing-type") {
		e.LandingType = models.LandingType(f.landingType)
	}
	if set("landings") {
		e.LandingCount = f.landings
	}
}

func (a *App) entriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"flights"},
		Short:   "Log and manage flights",
	}

	var addFlags entryFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Log a flight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.FlightEntry
			addFlags.apply(cmd.Flags(), &e, true)

			ctx, cancel := a.requestContext(cmd)
			defer cancel()
			saved, err := a.client.AddEntry(ctx, &e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s) as %s\n", saved.Date, saved.TotalFlightTime, saved.ID)
			return nil
		},
	}
	addFlags.register(add.Flags())

	var month, student string
	list := &cobra.Command{
		Use:   "list",
		Short: "List flights, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			entries, err := a.client.Entries(ctx, models.FlightFilter{Month: month, Student: student})
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
	list.Flags().StringVar(&month, "month", "", "Only flights in this month (YYYY-MM)")
	list.Flags().StringVar(&student, "student", "", "Only flights of this student")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			e, err := a.client.Entry(ctx, args[0])
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), []*models.FlightEntry{e})
		},
	}

	var updateFlags entryFlags
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a logged flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			e, err := a.client.Entry(ctx, args[0])
			if err != nil {
				return err
			}
			edited := *e
			updateFlags.apply(cmd.Flags(), &edited, false)

			saved, err := a.client.UpdateEntry(ctx, args[0], &edited)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", saved.ID, saved.TotalFlightTime)
			return nil
		},
	}
	updateFlags.register(update.Flags())

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a logged flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := a.client.DeleteEntry(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, list, get, update, del)
	return cmd
}

func printEntries(w io.Writer, entries []*models.FlightEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No flights logged.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSTUDENT\tINSTRUCTOR\tAIRCRAFT\tTYPE\tEXERCISE\tTAKEOFF\tLANDING\tTOTAL\tLANDINGS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d %s\n",
			e.ID, e.Date, e.Student, e.Instructor, e.Aircraft, e.FlightType.Label(), e.Exercise,
			e.TakeoffTime, e.LandingTime, e.TotalFlightTime, e.LandingCount, e.LandingType.Label())
	}
	return tw.Flush()
}
