package appointment

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Today renders now as the calendar date the views compare against.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// IsUpcoming reports whether ap belongs to the upcoming view for today.
// Dates and times are zero-padded ISO strings, so byte order is calendar order.
func IsUpcoming(ap models.Appointment, today string) bool {
	return ap.Date >= today && ap.Status == string(StatusScheduled)
}

// Upcoming returns every scheduled record dated today or later,
// earliest first. The input is never modified.
func Upcoming(records []models.Appointment, today string) []models.Appointment {
	out := make([]models.Appointment, 0, len(records))
	for _, ap := range records {
		if IsUpcoming(ap, today) {
			out = append(out, ap.Clone())
		}
	}
	slices.SortStableFunc(out, compareSlot)
	return out
}

// Past is the complement of Upcoming over the same records: anything dated
// before today or no longer scheduled, most recent first.
func Past(records []models.Appointment, today string) []models.Appointment {
	out := make([]models.Appointment, 0, len(records))
	for _, ap := range records {
		if !IsUpcoming(ap, today) {
			out = append(out, ap.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b models.Appointment) int {
		return compareSlot(b, a)
	})
	return out
}

func compareSlot(a, b models.Appointment) int {
	return cmp.Or(
		strings.Compare(a.Date, b.Date),
		strings.Compare(a.Time, b.Time),
	)
}

// StartsAt parses the record's date and time as a point in loc.
func StartsAt(ap models.Appointment, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, ap.Date+" "+ap.Time, loc)
}
