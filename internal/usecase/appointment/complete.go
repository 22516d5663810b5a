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
)

type CompleteAppointment struct {
	wait  latency.Waiter
	clock Clock
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCompleteAppointment(
	wait latency.Waiter,
	clock Clock,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		wait:  wait,
		clock: clock,
		audit: audit,
		log:   named(log, "complete"),
	}
}

// Execute moves a scheduled appointment to completed.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	st appointment.Repository,
	id string,
) result.Result[models.Appointment] {

	res := result.Guard(func() (models.Appointment, error) {
		current, ok := st.Find(id)
		if !ok {
			return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
		}
		if err := appointment.CanComplete(appointment.Status(current.Status)); err != nil {
			return models.Appointment{}, err
		}

		if err := uc.wait.Wait(ctx); err != nil {
			return models.Appointment{}, fmt.Errorf("complete appointment: %w", err)
		}

		return st.MarkCompleted(id, uc.clock.Now())
	})

	if !res.OK {
		uc.log.Debug("complete rejected",
			zap.String("appointment_id", id),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
		return res
	}

	dispatch(uc.audit, audit.ActionAppointmentCompleted, res.Value)
	return res
}
