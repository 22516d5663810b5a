package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const DefaultReminderSpec = "0 8 * * *"

type Notifier interface {
	Create(userID string, n models.Notification) (models.Notification, error)
}

// Reminders notifies every patient about the appointments they have tomorrow.
type Reminders struct {
	stores *store.Registry
	notify Notifier
	clock  *timezone.Clock
	log    *zap.Logger
}

func NewReminders(stores *store.Registry, notify Notifier, clock *timezone.Clock, log *zap.Logger) *Reminders {
	return &Reminders{
		stores: stores,
		notify: notify,
		clock:  clock,
		log:    log.Named("reminders"),
	}
}

// Run sends the reminders and returns how many were created.
func (r *Reminders) Run() int {
	now := r.clock.Now()
	today := appointment.Today(now)
	tomorrow := appointment.Today(now.AddDate(0, 0, 1))

	sent := 0
	for _, patientID := range r.stores.Patients() {
		for _, ap := range appointment.Upcoming(r.stores.ForPatient(patientID).Snapshot(), today) {
			if ap.Date != tomorrow {
				continue
			}

			_, err := r.notify.Create(patientID, models.Notification{
				Title:   "Appointment Reminder",
				Message: reminderMessage(ap),
				Type:    string(notification.TypeReminder),
				Date:    now,
			})
			if err != nil {
				r.log.Warn("reminder not created",
					zap.String("patient_id", patientID),
					zap.String("appointment_id", ap.ID),
					zap.Error(err),
				)
				continue
			}
			sent++
		}
	}

	r.log.Info("reminders sent", zap.Int("count", sent), zap.String("date", tomorrow))
	return sent
}

func reminderMessage(ap models.Appointment) string {
	if ap.Doctor != nil && ap.Doctor.Name != "" {
		return fmt.Sprintf("Don't forget your appointment with %s tomorrow at %s.", ap.Doctor.Name, ap.Time)
	}
	return fmt.Sprintf("Don't forget your appointment tomorrow at %s.", ap.Time)
}

// ===============================
// Scheduler
// ===============================

type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(spec string, reminders *Reminders, clock *timezone.Clock) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultReminderSpec
	}

	c := cron.New(cron.WithLocation(clock.Location()))
	if _, err := c.AddFunc(spec, func() { reminders.Run() }); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c}, nil
}

// Run starts the scheduler and blocks until ctx is done, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}
