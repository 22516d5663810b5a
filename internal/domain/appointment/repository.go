package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository is the handle the use cases operate on. One instance holds one
// patient's collection; every method is a single synchronous transition.
type Repository interface {
	// -------- Flags --------
	SetLoading()
	SetError(message string)

	// -------- Transitions --------
	ReplaceAll(records []models.Appointment)
	Insert(ap models.Appointment) error
	Patch(id string, p Patch) (models.Appointment, error)
	MarkCancelled(id string) (models.Appointment, error)
	MarkCompleted(id string, now time.Time) (models.Appointment, error)

	// -------- Reads --------
	Find(id string) (models.Appointment, bool)
	Snapshot() []models.Appointment

	// -------- Selection --------
	Select(id string) (models.Appointment, error)
	ClearSelection()
	Selected() (models.Appointment, bool)
}
