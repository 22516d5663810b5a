package appointment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// UpdateInput is merged over the stored record; nil fields are kept.
type UpdateInput struct {
	DoctorID *string
	Date     *string
	Time     *string
	Status   *string
	Type     *string
	Notes    *string
	Symptoms *[]string
}

func (in UpdateInput) validate() error {
	var f validators.Fields
	if in.DoctorID != nil {
		f.Required("doctorId", *in.DoctorID)
	}
	if in.Date != nil {
		f.Date("date", *in.Date)
	}
	if in.Time != nil {
		f.Time("time", *in.Time)
	}
	if in.Status != nil {
		f.Status("status", *in.Status)
	}
	if in.Type != nil {
		f.Type("type", *in.Type)
	}
	return f.Err()
}

type UpdateAppointment struct {
	wait    latency.Waiter
	doctors Doctors
	clock   Clock
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewUpdateAppointment(
	wait latency.Waiter,
	doctors Doctors,
	clock Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		wait:    wait,
		doctors: doctors,
		clock:   clock,
		audit:   audit,
		log:     named(log, "update"),
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	st appointment.Repository,
	id string,
	in UpdateInput,
) result.Result[models.Appointment] {

	res := result.Guard(func() (models.Appointment, error) {
		if _, ok := st.Find(id); !ok {
			return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
		}
		if err := in.validate(); err != nil {
			return models.Appointment{}, err
		}

		if err := uc.wait.Wait(ctx); err != nil {
			return models.Appointment{}, fmt.Errorf("update appointment: %w", err)
		}

		return st.Patch(id, uc.patch(in))
	})

	if !res.OK {
		uc.log.Debug("update rejected",
			zap.String("appointment_id", id),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
		return res
	}

	dispatch(uc.audit, audit.ActionAppointmentUpdated, res.Value)
	return res
}

func (uc *UpdateAppointment) patch(in UpdateInput) appointment.Patch {
	now := uc.clock.Now()
	p := appointment.Patch{
		DoctorID:  in.DoctorID,
		Date:      in.Date,
		Time:      in.Time,
		Notes:     in.Notes,
		Symptoms:  in.Symptoms,
		UpdatedAt: &now,
	}
	if in.Status != nil {
		s := appointment.Status(*in.Status)
		p.Status = &s
	}
	if in.Type != nil {
		t := appointment.Type(*in.Type)
		p.Type = &t
	}
	if in.DoctorID != nil {
		if doc, ok := uc.doctors.Get(*in.DoctorID); ok {
			p.Doctor = &doc
		} else {
			p.ClearDoctor = true
		}
	}
	return p
}
