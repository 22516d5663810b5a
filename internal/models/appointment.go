package models

import (
	"slices"
	"time"
)

type Appointment struct {
	ID string `json:"id"`

	PatientID string  `json:"patientId"`
	DoctorID  string  `json:"doctorId"`
	Doctor    *Doctor `json:"doctor,omitempty"`

	Date string `json:"date"`
	Time string `json:"time"`

	Status string `json:"status"`
	Type   string `json:"type"`

	Notes    string   `json:"notes,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a copy that shares no memory with ap.
func (ap Appointment) Clone() Appointment {
	out := ap
	if ap.Doctor != nil {
		d := *ap.Doctor
		out.Doctor = &d
	}
	if ap.Symptoms != nil {
		out.Symptoms = slices.Clone(ap.Symptoms)
	}
	if ap.UpdatedAt != nil {
		t := *ap.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
