package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryForPatient(t *testing.T) {
	reg := NewRegistry()

	a := reg.ForPatient("p1")
	require.Same(t, a, reg.ForPatient("p1"))
	assert.NotSame(t, a, reg.ForPatient("p2"))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"p1", "p2"}, reg.Patients())
}

func TestRegistryDrop(t *testing.T) {
	reg := NewRegistry()
	first := reg.ForPatient("p1")
	require.NoError(t, first.Insert(record("a", "2024-05-01", "09:00")))

	reg.Drop("p1")
	assert.Equal(t, 0, reg.Len())

	fresh := reg.ForPatient("p1")
	assert.NotSame(t, first, fresh)
	assert.Equal(t, 0, fresh.State().Count)
}
