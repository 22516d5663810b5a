package appointment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

type CancelAppointment struct {
	wait  latency.Waiter
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCancelAppointment(
	wait latency.Waiter,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		wait:  wait,
		audit: audit,
		log:   named(log, "cancel"),
	}
}

// Execute sets the status to cancelled and touches nothing else.
// Cancelling an already cancelled appointment succeeds.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	st appointment.Repository,
	id string,
) result.Result[result.Ack] {

	res := result.Guard(func() (result.Ack, error) {
		if _, ok := st.Find(id); !ok {
			return result.Ack{}, fmt.Errorf("appointment %s: %w", id, domain.ErrNotFound)
		}

		if err := uc.wait.Wait(ctx); err != nil {
			return result.Ack{}, fmt.Errorf("cancel appointment: %w", err)
		}

		ap, err := st.MarkCancelled(id)
		if err != nil {
			return result.Ack{}, err
		}

		dispatch(uc.audit, audit.ActionAppointmentCancelled, ap)
		return result.Ack{}, nil
	})

	if !res.OK {
		uc.log.Debug("cancel rejected",
			zap.String("appointment_id", id),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
	}
	return res
}
