package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

const DefaultSlotLength = 30 * time.Minute

// Availability walks the clinic day in slot-sized steps and returns the slots
// not taken by a scheduled appointment of doctorID on day. It only reads records;
// nothing stops a booking on a taken slot.
func Availability(
	records []models.Appointment,
	doctorID string,
	day time.Time,
	hours ClinicHours,
	slot time.Duration,
) []TimeSlot {

	dayStart, dayEnd, ok := hours.window(day)
	if !ok || slot <= 0 {
		return []TimeSlot{}
	}
	lunchStart, lunchEnd, hasLunch := hours.lunch(day)

	date := day.Format(DateLayout)
	taken := make(map[string]bool)
	for _, ap := range records {
		if ap.DoctorID == doctorID && ap.Date == date && ap.Status == string(StatusScheduled) {
			taken[ap.Time] = true
		}
	}

	slots := []TimeSlot{}
	for cur := dayStart; !cur.Add(slot).After(dayEnd); cur = cur.Add(slot) {
		slotStart := cur
		slotEnd := cur.Add(slot)

		if hasLunch && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}
		if taken[slotStart.Format(TimeLayout)] {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: slotStart.Format(TimeLayout),
			End:   slotEnd.Format(TimeLayout),
		})
	}

	return slots
}
