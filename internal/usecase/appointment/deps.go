// Package appointment holds the access-layer operations over a patient's store.
// Every Execute converts errors and panics into a result.Result; nothing escapes.
package appointment

import (
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Clock interface {
	Now() time.Time
	Today() string
}

type Generator interface {
	Generate(patientID string, count int) ([]models.Appointment, error)
}

type Doctors interface {
	Get(id string) (models.Doctor, bool)
}

const entityAppointment = "appointment"

func dispatch(d *audit.Dispatcher, action string, ap models.Appointment) {
	d.Dispatch(audit.Event{
		UserID:   ap.PatientID,
		Action:   action,
		Entity:   entityAppointment,
		EntityID: ap.ID,
		Metadata: metaOf(ap),
	})
}

func metaOf(ap models.Appointment) audit.AppointmentMeta {
	m := audit.AppointmentMeta{
		ID:       ap.ID,
		DoctorID: ap.DoctorID,
		Date:     ap.Date,
		Time:     ap.Time,
		Status:   ap.Status,
	}
	if ap.Doctor != nil {
		m.DoctorName = ap.Doctor.Name
	}
	return m
}

func named(log *zap.Logger, name string) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log.Named(name)
}
