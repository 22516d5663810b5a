package appointment

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mockdata"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var fixedNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func testClock() *timezone.Clock {
	return timezone.Fixed(fixedNow)
}

// blockingWaiter waits until ctx is done.
type blockingWaiter struct{}

func (blockingWaiter) Wait(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

type generatorFunc func(patientID string, count int) ([]models.Appointment, error)

func (f generatorFunc) Generate(patientID string, count int) ([]models.Appointment, error) {
	return f(patientID, count)
}

func seededGenerator() *mockdata.Generator {
	var n atomic.Int64
	return mockdata.New(directory.Default(),
		mockdata.WithSeed(3),
		mockdata.WithClock(func() time.Time { return fixedNow }),
		mockdata.WithIDs(func() string { return fmt.Sprintf("gen-%d", n.Add(1)) }),
	)
}

func seededStore(records ...models.Appointment) *store.Store {
	st := store.New()
	st.ReplaceAll(records)
	return st
}

func scheduled(id, date, clock string) models.Appointment {
	doc, _ := directory.Default().Get("d1")
	return models.Appointment{
		ID:        id,
		PatientID: "p1",
		DoctorID:  doc.ID,
		Doctor:    &doc,
		Date:      date,
		Time:      clock,
		Status:    string(appointment.StatusScheduled),
		Type:      string(appointment.TypeConsultation),
		Notes:     "initial",
		Symptoms:  []string{"Cough"},
		CreatedAt: fixedNow.Add(-48 * time.Hour),
	}
}

var noWait = latency.None
