package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
)

func TestSelectAppointment(t *testing.T) {
	st := seededStore(scheduled("a", "2024-05-20", "09:00"))
	uc := NewSelectAppointment()

	none := uc.Current(st)
	require.False(t, none.OK)
	assert.Equal(t, result.KindNotFound, none.Kind)

	res := uc.Execute(st, "a")
	require.True(t, res.OK, res.Reason)
	assert.Equal(t, "a", res.Value.ID)

	cur := uc.Current(st)
	require.True(t, cur.OK)
	assert.Equal(t, "a", cur.Value.ID)

	require.True(t, uc.Clear(st).OK)
	assert.False(t, uc.Current(st).OK)

	missing := uc.Execute(st, "nope")
	require.False(t, missing.OK)
	assert.Equal(t, result.KindNotFound, missing.Kind)
}
