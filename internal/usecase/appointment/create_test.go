package appointment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
)

func validInput() CreateInput {
	return CreateInput{
		PatientID: "p1",
		DoctorID:  "d3",
		Date:      "2024-05-20",
		Time:      "10:30",
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	st := store.New()
	uc := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil)

	seen := map[string]bool{}
	for range 100 {
		res := uc.Execute(context.Background(), st, validInput())
		require.True(t, res.OK, res.Reason)
		assert.False(t, seen[res.Value.ID], "duplicate id %s", res.Value.ID)
		seen[res.Value.ID] = true
	}
	assert.Equal(t, 100, st.State().Count)
}

func TestCreateFillsDefaults(t *testing.T) {
	st := store.New()
	uc := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil)

	res := uc.Execute(context.Background(), st, validInput())
	require.True(t, res.OK, res.Reason)

	ap := res.Value
	assert.Equal(t, string(appointment.StatusScheduled), ap.Status)
	assert.Equal(t, string(appointment.TypeConsultation), ap.Type)
	assert.Equal(t, fixedNow, ap.CreatedAt)
	require.NotNil(t, ap.Doctor)
	assert.Equal(t, "Dr. Emily Rodriguez", ap.Doctor.Name)

	stored, ok := st.Find(ap.ID)
	require.True(t, ok)
	assert.Equal(t, ap, stored)
}

func TestCreateEventLeavesClinicalFieldsOut(t *testing.T) {
	var events []audit.Event
	d := audit.NewDispatcher(zap.NewNop(), audit.SinkFunc(func(ev audit.Event) error {
		events = append(events, ev)
		return nil
	}))

	in := validInput()
	in.Notes = "private history"
	in.Symptoms = []string{"Chest pain"}

	res := NewCreateAppointment(noWait, directory.Default(), testClock(), d, nil).
		Execute(context.Background(), store.New(), in)
	require.True(t, res.OK, res.Reason)
	d.Close()

	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionAppointmentCreated, events[0].Action)
	assert.Equal(t, audit.AppointmentMeta{
		ID:         res.Value.ID,
		DoctorID:   "d3",
		DoctorName: "Dr. Emily Rodriguez",
		Date:       "2024-05-20",
		Time:       "10:30",
		Status:     string(appointment.StatusScheduled),
	}, events[0].Metadata)

	raw, err := json.Marshal(events[0].Metadata)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "private history")
	assert.NotContains(t, string(raw), "Chest pain")
}

func TestCreateAllowsOverlappingBookings(t *testing.T) {
	st := store.New()
	uc := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil)

	require.True(t, uc.Execute(context.Background(), st, validInput()).OK)
	require.True(t, uc.Execute(context.Background(), st, validInput()).OK)
	assert.Equal(t, 2, st.State().Count)
}

func TestCreateUnknownDoctorKeepsReference(t *testing.T) {
	in := validInput()
	in.DoctorID = "d99"

	res := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil).
		Execute(context.Background(), store.New(), in)
	require.True(t, res.OK, res.Reason)
	assert.Equal(t, "d99", res.Value.DoctorID)
	assert.Nil(t, res.Value.Doctor)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing patient", func(in *CreateInput) { in.PatientID = "" }},
		{"missing doctor", func(in *CreateInput) { in.DoctorID = "" }},
		{"bad date", func(in *CreateInput) { in.Date = "20/05/2024" }},
		{"bad time", func(in *CreateInput) { in.Time = "10h30" }},
		{"unknown status", func(in *CreateInput) { in.Status = "pending" }},
		{"unknown type", func(in *CreateInput) { in.Type = "surgery" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.New()
			in := validInput()
			tt.mutate(&in)

			res := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil).
				Execute(context.Background(), st, in)
			require.False(t, res.OK)
			assert.Equal(t, result.KindValidation, res.Kind)
			assert.Zero(t, st.State().Count)
		})
	}
}

func TestCreateDuplicateIDIsConflict(t *testing.T) {
	st := store.New()
	uc := NewCreateAppointment(noWait, directory.Default(), testClock(), nil, nil).
		WithIDs(func() string { return "fixed" })

	require.True(t, uc.Execute(context.Background(), st, validInput()).OK)

	res := uc.Execute(context.Background(), st, validInput())
	require.False(t, res.OK)
	assert.Equal(t, result.KindConflict, res.Kind)
	assert.Equal(t, 1, st.State().Count)
}

func TestCreateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := store.New()
	res := NewCreateAppointment(blockingWaiter{}, directory.Default(), testClock(), nil, nil).
		Execute(ctx, st, validInput())
	require.False(t, res.OK)
	assert.Equal(t, result.KindCancelled, res.Kind)
	assert.Zero(t, st.State().Count)
}
