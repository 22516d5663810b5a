package appointment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

const DefaultBatchSize = 10

type FetchAppointments struct {
	wait  latency.Waiter
	gen   Generator
	batch int
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewFetchAppointments(
	wait latency.Waiter,
	gen Generator,
	batch int,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *FetchAppointments {
	if batch < 0 {
		batch = DefaultBatchSize
	}
	return &FetchAppointments{
		wait:  wait,
		gen:   gen,
		batch: batch,
		audit: audit,
		log:   named(log, "fetch"),
	}
}

// Execute replaces the store's collection with a fresh synthetic batch.
// On any failure the previous collection stays and the store records the reason.
func (uc *FetchAppointments) Execute(
	ctx context.Context,
	st appointment.Repository,
	patientID string,
) result.Result[[]models.Appointment] {

	st.SetLoading()

	res := result.Guard(func() ([]models.Appointment, error) {
		if err := uc.wait.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fetch appointments: %w", err)
		}

		records, err := uc.generate(patientID)
		if err != nil {
			return nil, err
		}

		st.ReplaceAll(records)
		return records, nil
	})

	if !res.OK {
		st.SetError(res.Reason)
		uc.log.Warn("fetch failed",
			zap.String("patient_id", patientID),
			zap.String("kind", string(res.Kind)),
			zap.String("reason", res.Reason),
		)
		return res
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   patientID,
		Action:   audit.ActionAppointmentsFetched,
		Entity:   entityAppointment,
		Metadata: map[string]int{"count": len(res.Value)},
	})
	return res
}

func (uc *FetchAppointments) generate(patientID string) (records []models.Appointment, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			records, err = nil, fmt.Errorf("%w: %v", domain.ErrGeneration, rec)
		}
	}()

	records, err = uc.gen.Generate(patientID, uc.batch)
	if err != nil && !errors.Is(err, domain.ErrGeneration) {
		err = fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}
	return records, err
}
