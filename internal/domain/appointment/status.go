package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeConsultation Type = "consultation"
	TypeFollowUp     Type = "follow-up"
	TypeCheckUp      Type = "check-up"
	TypeEmergency    Type = "emergency"
)

var Types = []Type{TypeConsultation, TypeFollowUp, TypeCheckUp, TypeEmergency}

func (t Type) Valid() bool {
	switch t {
	case TypeConsultation, TypeFollowUp, TypeCheckUp, TypeEmergency:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanComplete only lets a scheduled appointment be completed.
// Cancel has no such guard: cancelling twice is allowed and leaves the status cancelled.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return fmt.Errorf("%w: cannot complete a %s appointment", domain.ErrValidation, current)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

func DefaultType() Type {
	return TypeConsultation
}
