package appointment

import (
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

// SelectAppointment tracks the record a patient is currently looking at.
type SelectAppointment struct{}

func NewSelectAppointment() *SelectAppointment {
	return &SelectAppointment{}
}

func (uc *SelectAppointment) Execute(st appointment.Repository, id string) result.Result[models.Appointment] {
	return result.Guard(func() (models.Appointment, error) {
		return st.Select(id)
	})
}

func (uc *SelectAppointment) Clear(st appointment.Repository) result.Result[result.Ack] {
	return result.Guard(func() (result.Ack, error) {
		st.ClearSelection()
		return result.Ack{}, nil
	})
}

func (uc *SelectAppointment) Current(st appointment.Repository) result.Result[models.Appointment] {
	return result.Guard(func() (models.Appointment, error) {
		ap, ok := st.Selected()
		if !ok {
			return models.Appointment{}, fmt.Errorf("selection: %w", domain.ErrNotFound)
		}
		return ap, nil
	})
}
