package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ListAppointments derives the upcoming and past views, recomputed on every call.
type ListAppointments struct {
	clock Clock
}

func NewListAppointments(clock Clock) *ListAppointments {
	return &ListAppointments{clock: clock}
}

func (uc *ListAppointments) All(st appointment.Repository) []models.Appointment {
	return st.Snapshot()
}

func (uc *ListAppointments) Get(st appointment.Repository, id string) (models.Appointment, bool) {
	return st.Find(id)
}

func (uc *ListAppointments) Upcoming(st appointment.Repository) []models.Appointment {
	return appointment.Upcoming(st.Snapshot(), uc.clock.Today())
}

func (uc *ListAppointments) Past(st appointment.Repository) []models.Appointment {
	return appointment.Past(st.Snapshot(), uc.clock.Today())
}
