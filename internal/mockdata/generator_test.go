package mockdata

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
)

var fixedNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	n := 0
	return New(directory.Default(),
		WithSeed(seed),
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("app-%d", n)
		}),
	)
}

func TestGenerateShape(t *testing.T) {
	g := newTestGenerator(42)
	dir := directory.Default()

	records, err := g.Generate("p1", 200)
	require.NoError(t, err)
	require.Len(t, records, 200)

	today := fixedNow.Format(appointment.DateLayout)
	earliest := fixedNow.AddDate(0, 0, -29).Format(appointment.DateLayout)
	latest := fixedNow.AddDate(0, 0, 30).Format(appointment.DateLayout)

	ids := map[string]bool{}
	for _, ap := range records {
		assert.False(t, ids[ap.ID], "duplicate id %s", ap.ID)
		ids[ap.ID] = true

		assert.Equal(t, "p1", ap.PatientID)

		doc, ok := dir.Get(ap.DoctorID)
		require.True(t, ok)
		require.NotNil(t, ap.Doctor)
		assert.Equal(t, doc, *ap.Doctor)

		assert.True(t, appointment.Status(ap.Status).Valid())
		assert.True(t, appointment.Type(ap.Type).Valid())

		assert.GreaterOrEqual(t, ap.Date, earliest)
		assert.LessOrEqual(t, ap.Date, latest)
		if ap.Date > today {
			assert.Equal(t, string(appointment.StatusScheduled), ap.Status)
		}

		clock, err := time.Parse(appointment.TimeLayout, ap.Time)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, clock.Hour(), 9)
		assert.LessOrEqual(t, clock.Hour(), 16)
		assert.Contains(t, []int{0, 30}, clock.Minute())

		assert.LessOrEqual(t, len(ap.Symptoms), 3)
		sorted := slices.Clone(ap.Symptoms)
		slices.Sort(sorted)
		assert.Len(t, slices.Compact(sorted), len(ap.Symptoms))

		if ap.Notes != "" {
			assert.Equal(t, PendingNotes, ap.Notes)
		}

		assert.False(t, ap.CreatedAt.After(fixedNow))
		assert.True(t, ap.CreatedAt.After(fixedNow.Add(-createdWithin-time.Second)))
	}
}

func TestGenerateIsSeedable(t *testing.T) {
	a, err := newTestGenerator(7).Generate("p1", 10)
	require.NoError(t, err)
	b, err := newTestGenerator(7).Generate("p1", 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateFailures(t *testing.T) {
	_, err := newTestGenerator(1).Generate("p1", -1)
	assert.ErrorIs(t, err, domain.ErrGeneration)

	empty := New(directory.New(nil))
	_, err = empty.Generate("p1", 3)
	assert.ErrorIs(t, err, domain.ErrGeneration)
}

func TestGenerateZero(t *testing.T) {
	records, err := newTestGenerator(1).Generate("p1", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
