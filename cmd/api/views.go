package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mockdata"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

var (
	viewsPatient string
	viewsToday   string
	viewsCount   int
	viewsSeed    uint64
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Print a patient's upcoming and past appointments",
	Long: `Generate a synthetic batch for one patient and print the upcoming
and past views. --today pins the reference date (YYYY-MM-DD).`,
	RunE: runViews,
}

func init() {
	viewsCmd.Flags().StringVar(&viewsPatient, "patient", "1", "Patient id")
	viewsCmd.Flags().StringVar(&viewsToday, "today", "", "Reference date, YYYY-MM-DD (default: now)")
	viewsCmd.Flags().IntVar(&viewsCount, "count", ucAppointment.DefaultBatchSize, "Number of appointments to generate")
	viewsCmd.Flags().Uint64Var(&viewsSeed, "seed", 0, "Generator seed (0 picks a random one)")
}

func runViews(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	clock, err := viewsClock(cfg.Appointment.Timezone, viewsToday)
	if err != nil {
		return err
	}

	opts := []mockdata.Option{mockdata.WithClock(clock.Now)}
	if viewsSeed != 0 {
		opts = append(opts, mockdata.WithSeed(viewsSeed))
	}
	gen := mockdata.New(directory.Default(), opts...)

	fetch := ucAppointment.NewFetchAppointments(latency.None, gen, viewsCount, nil, zap.NewNop())
	list := ucAppointment.NewListAppointments(clock)

	st := store.New()
	res := fetch.Execute(cmd.Context(), st, viewsPatient)
	if !res.OK {
		return fmt.Errorf("fetch appointments: %w", res.Err())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Today: %s\n\n", clock.Today())

	fmt.Fprintln(out, "UPCOMING")
	if err := printRows(out, dto.AppointmentList(list.Upcoming(st))); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nPAST")
	return printRows(out, dto.AppointmentList(list.Past(st)))
}

func viewsClock(tz, today string) (*timezone.Clock, error) {
	if today == "" {
		return timezone.NewClock(tz), nil
	}

	day, err := time.ParseInLocation(time.DateOnly, today, timezone.Location(tz))
	if err != nil {
		return nil, fmt.Errorf("--today must be YYYY-MM-DD: %w", err)
	}
	return timezone.Fixed(day.Add(12 * time.Hour)), nil
}

func printRows(w io.Writer, rows []dto.AppointmentListDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tSTATUS\tTYPE\tDOCTOR\tSPECIALTY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Date, r.Time, r.Status, r.Type, r.DoctorName, r.Specialty)
	}
	return tw.Flush()
}
