package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

func TestComplete(t *testing.T) {
	st := seededStore(scheduled("a", "2024-05-14", "09:00"))

	res := NewCompleteAppointment(noWait, testClock(), nil, nil).Execute(context.Background(), st, "a")
	require.True(t, res.OK, res.Reason)
	assert.Equal(t, string(appointment.StatusCompleted), res.Value.Status)
	require.NotNil(t, res.Value.UpdatedAt)
	assert.Equal(t, fixedNow, *res.Value.UpdatedAt)
}

func TestCompleteRejectsNonScheduled(t *testing.T) {
	ap := scheduled("a", "2024-05-14", "09:00")
	ap.Status = string(appointment.StatusCancelled)
	st := seededStore(ap)

	res := NewCompleteAppointment(noWait, testClock(), nil, nil).Execute(context.Background(), st, "a")
	require.False(t, res.OK)
	assert.Equal(t, result.KindValidation, res.Kind)

	got, _ := st.Find("a")
	assert.Equal(t, string(appointment.StatusCancelled), got.Status)
}

func TestCompleteNotFound(t *testing.T) {
	res := NewCompleteAppointment(noWait, testClock(), nil, nil).Execute(context.Background(), seededStore(), "missing")
	require.False(t, res.OK)
	assert.Equal(t, result.KindNotFound, res.Kind)
}
