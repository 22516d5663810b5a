package notification

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// EventSink turns appointment events into appointment notifications.
type EventSink struct {
	center *Center
}

func NewEventSink(center *Center) *EventSink {
	return &EventSink{center: center}
}

func (s *EventSink) Record(ev audit.Event) error {
	ap, ok := ev.Metadata.(audit.AppointmentMeta)
	if !ok || ev.UserID == "" {
		return nil
	}

	var title, verb string
	switch ev.Action {
	case audit.ActionAppointmentCreated:
		title, verb = "Appointment Scheduled", "has been scheduled"
	case audit.ActionAppointmentUpdated:
		title, verb = "Appointment Updated", "has been updated"
	case audit.ActionAppointmentCancelled:
		title, verb = "Appointment Cancelled", "has been cancelled"
	case audit.ActionAppointmentCompleted:
		title, verb = "Appointment Completed", "has been marked as completed"
	default:
		return nil
	}

	_, err := s.center.Create(ev.UserID, models.Notification{
		Title:   title,
		Message: fmt.Sprintf("Your appointment%s on %s at %s %s.", withDoctor(ap), ap.Date, ap.Time, verb),
		Type:    string(TypeAppointment),
		Date:    ev.At,
	})
	return err
}

func withDoctor(ap audit.AppointmentMeta) string {
	if ap.DoctorName == "" {
		return ""
	}
	return " with " + ap.DoctorName
}

// Compile-time check
var _ audit.Sink = (*EventSink)(nil)
