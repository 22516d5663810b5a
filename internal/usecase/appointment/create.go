package appointment

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	PatientID string
	DoctorID  string

	Date string
	Time string

	Status string
	Type   string

	Notes    string
	Symptoms []string
}

func (in CreateInput) validate() error {
	var f validators.Fields
	f.Required("patientId", in.PatientID)
	f.Required("doctorId", in.DoctorID)
	f.Date("date", in.Date)
	f.Time("time", in.Time)
	if in.Status != "" {
		f.Status("status", in.Status)
	}
	if in.Type != "" {
		f.Type("type", in.Type)
	}
	return f.Err()
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	wait    latency.Waiter
	doctors Doctors
	clock   Clock
	newID   func() string
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewCreateAppointment(
	wait latency.Waiter,
	doctors Doctors,
	clock Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		wait:    wait,
		doctors: doctors,
		clock:   clock,
		newID:   uuid.NewString,
		audit:   audit,
		log:     named(log, "create"),
	}
}

// WithIDs swaps the id source; tests use it for deterministic ids.
func (uc *CreateAppointment) WithIDs(next func() string) *CreateAppointment {
	uc.newID = next
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

// Execute checks formats only. Overlapping bookings for the same doctor
// are accepted.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	st appointment.Repository,
	in CreateInput,
) result.Result[models.Appointment] {

	res := result.Guard(func() (models.Appointment, error) {
		if err := in.validate(); err != nil {
			return models.Appointment{}, err
		}

		if err := uc.wait.Wait(ctx); err != nil {
			return models.Appointment{}, fmt.Errorf("create appointment: %w", err)
		}

		ap := models.Appointment{
			ID:        uc.newID(),
			PatientID: in.PatientID,
			DoctorID:  in.DoctorID,
			Date:      in.Date,
			Time:      in.Time,
			Status:    string(appointment.InitialStatus()),
			Type:      string(appointment.DefaultType()),
			Notes:     in.Notes,
			Symptoms:  slices.Clone(in.Symptoms),
			CreatedAt: uc.clock.Now(),
		}
		if in.Status != "" {
			ap.Status = in.Status
		}
		if in.Type != "" {
			ap.Type = in.Type
		}
		if doc, ok := uc.doctors.Get(in.DoctorID); ok {
			ap.Doctor = &doc
		}

		if err := st.Insert(ap); err != nil {
			return models.Appointment{}, err
		}
		return ap, nil
	})

	if !res.OK {
		uc.log.Debug("create rejected",
			zap.String("patient_id", in.PatientID),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
		return res
	}

	dispatch(uc.audit, audit.ActionAppointmentCreated, res.Value)
	return res
}
