package appointment

import "time"

// ClinicHours is the daily window doctors see patients in.
// Lunch is optional; leave both lunch fields empty for none.
type ClinicHours struct {
	Start      string
	End        string
	LunchStart string
	LunchEnd   string
}

// DefaultClinicHours matches the slots the mock data is generated in.
var DefaultClinicHours = ClinicHours{Start: "09:00", End: "17:00"}

func (h ClinicHours) window(day time.Time) (start, end time.Time, ok bool) {
	start, ok1 := clock(day, h.Start)
	end, ok2 := clock(day, h.End)
	return start, end, ok1 && ok2 && start.Before(end)
}

func (h ClinicHours) lunch(day time.Time) (start, end time.Time, ok bool) {
	if h.LunchStart == "" || h.LunchEnd == "" {
		return time.Time{}, time.Time{}, false
	}
	start, ok1 := clock(day, h.LunchStart)
	end, ok2 := clock(day, h.LunchEnd)
	return start, end, ok1 && ok2
}

func clock(day time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}
