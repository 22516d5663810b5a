package appointment

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

func TestCancelChangesOnlyStatus(t *testing.T) {
	original := scheduled("a", "2024-05-20", "09:00")
	st := seededStore(original)

	res := NewCancelAppointment(noWait, nil, nil).Execute(context.Background(), st, "a")
	require.True(t, res.OK, res.Reason)
	assert.Equal(t, result.Ack{}, res.Value)

	got, ok := st.Find("a")
	require.True(t, ok)

	want := original.Clone()
	want.Status = string(appointment.StatusCancelled)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cancel changed more than status (-want +got):\n%s", diff)
	}
}

func TestCancelTwiceSucceeds(t *testing.T) {
	st := seededStore(scheduled("a", "2024-05-20", "09:00"))
	uc := NewCancelAppointment(noWait, nil, nil)

	require.True(t, uc.Execute(context.Background(), st, "a").OK)
	second := uc.Execute(context.Background(), st, "a")
	require.True(t, second.OK, second.Reason)

	got, _ := st.Find("a")
	assert.Equal(t, string(appointment.StatusCancelled), got.Status)
}

func TestCancelNotFound(t *testing.T) {
	st := seededStore(scheduled("a", "2024-05-20", "09:00"))

	res := NewCancelAppointment(noWait, nil, nil).Execute(context.Background(), st, "missing")
	require.False(t, res.OK)
	assert.Equal(t, result.KindNotFound, res.Kind)

	got, _ := st.Find("a")
	assert.Equal(t, string(appointment.StatusScheduled), got.Status)
}

func TestCancelInterrupted(t *testing.T) {
	st := seededStore(scheduled("a", "2024-05-20", "09:00"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewCancelAppointment(blockingWaiter{}, nil, nil).Execute(ctx, st, "a")
	require.False(t, res.OK)
	assert.Equal(t, result.KindCancelled, res.Kind)

	got, _ := st.Find("a")
	assert.Equal(t, string(appointment.StatusScheduled), got.Status)
}
