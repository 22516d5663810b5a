package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Patch carries the fields an update merges over an existing record.
// Nil fields are left untouched.
type Patch struct {
	PatientID *string
	DoctorID  *string
	Doctor    *models.Doctor
	Date      *string
	Time      *string
	Status    *Status
	Type      *Type
	Notes     *string
	Symptoms  *[]string
	UpdatedAt *time.Time

	// ClearDoctor drops the inlined doctor copy; Doctor wins when both are set.
	ClearDoctor bool
}

func (p Patch) Empty() bool {
	return p.PatientID == nil && p.DoctorID == nil && p.Doctor == nil &&
		p.Date == nil && p.Time == nil && p.Status == nil && p.Type == nil &&
		p.Notes == nil && p.Symptoms == nil && p.UpdatedAt == nil && !p.ClearDoctor
}

// ===============================
// Domain Actions
// ===============================

func Apply(ap *models.Appointment, p Patch) {
	if p.PatientID != nil {
		ap.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		ap.DoctorID = *p.DoctorID
	}
	switch {
	case p.Doctor != nil:
		d := *p.Doctor
		ap.Doctor = &d
	case p.ClearDoctor:
		ap.Doctor = nil
	}
	if p.Date != nil {
		ap.Date = *p.Date
	}
	if p.Time != nil {
		ap.Time = *p.Time
	}
	if p.Status != nil {
		ap.Status = string(*p.Status)
	}
	if p.Type != nil {
		ap.Type = string(*p.Type)
	}
	if p.Notes != nil {
		ap.Notes = *p.Notes
	}
	if p.Symptoms != nil {
		ap.Symptoms = append([]string(nil), (*p.Symptoms)...)
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		ap.UpdatedAt = &t
	}
}

// Cancel touches nothing but the status.
func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.UpdatedAt = &now
	return nil
}
