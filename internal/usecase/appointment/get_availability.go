package appointment

import (
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

type Locator interface {
	Location() *time.Location
}

// GetAvailability lists a doctor's free slots for one day as seen from a
// single patient's store. Create never consults it.
type GetAvailability struct {
	doctors Doctors
	loc     Locator
	hours   appointment.ClinicHours
	slot    time.Duration
}

func NewGetAvailability(doctors Doctors, loc Locator) *GetAvailability {
	return &GetAvailability{
		doctors: doctors,
		loc:     loc,
		hours:   appointment.DefaultClinicHours,
		slot:    appointment.DefaultSlotLength,
	}
}

func (uc *GetAvailability) Execute(
	st appointment.Repository,
	doctorID string,
	date string,
) result.Result[[]appointment.TimeSlot] {

	return result.Guard(func() ([]appointment.TimeSlot, error) {
		if _, ok := uc.doctors.Get(doctorID); !ok {
			return nil, fmt.Errorf("doctor %s: %w", doctorID, domain.ErrNotFound)
		}

		day, err := time.ParseInLocation(appointment.DateLayout, date, uc.loc.Location())
		if err != nil {
			return nil, domain.NewValidationError("date", "must be a YYYY-MM-DD date")
		}

		return appointment.Availability(st.Snapshot(), doctorID, day, uc.hours, uc.slot), nil
	})
}
