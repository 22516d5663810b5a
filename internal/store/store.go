// Package store holds one patient's appointment collection in memory.
package store

import (
	"fmt"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	ErrNotFound    = domain.ErrNotFound
	ErrDuplicateID = domain.ErrAlreadyExists
)

type State struct {
	Loading    bool   `json:"loading"`
	Error      string `json:"error,omitempty"`
	Count      int    `json:"count"`
	SelectedID string `json:"selectedId,omitempty"`
}

// Store applies one transition at a time. Every read hands out copies, so
// callers never alias the owned collection.
type Store struct {
	mu sync.RWMutex

	appointments []models.Appointment
	selectedID   string
	pending      int
	lastErr      string
}

func New() *Store {
	return &Store{}
}

// --------------------------------------------------
// Flags
// --------------------------------------------------

// SetLoading opens one in-flight load. Loading stays true until every open
// load has ended through ReplaceAll or SetError. Overlapping loads still
// replace the collection in completion order.
func (s *Store) SetLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending++
	s.lastErr = ""
}

func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settle()
	s.lastErr = message
}

func (s *Store) settle() {
	if s.pending > 0 {
		s.pending--
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Loading:    s.pending > 0,
		Error:      s.lastErr,
		Count:      len(s.appointments),
		SelectedID: s.selectedID,
	}
}

// --------------------------------------------------
// Transitions
// --------------------------------------------------

func (s *Store) ReplaceAll(records []models.Appointment) {
	next := make([]models.Appointment, 0, len(records))
	for _, ap := range records {
		next = append(next, ap.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = next
	s.settle()
	s.lastErr = ""
	if s.selectedID != "" && s.indexOf(s.selectedID) < 0 {
		s.selectedID = ""
	}
}

func (s *Store) Insert(ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(ap.ID) >= 0 {
		return fmt.Errorf("appointment %s: %w", ap.ID, ErrDuplicateID)
	}

	s.appointments = append(s.appointments, ap.Clone())
	s.lastErr = ""
	return nil
}

func (s *Store) Patch(id string, p appointment.Patch) (models.Appointment, error) {
	return s.mutate(id, func(ap *models.Appointment) error {
		appointment.Apply(ap, p)
		return nil
	})
}

func (s *Store) MarkCancelled(id string) (models.Appointment, error) {
	return s.mutate(id, func(ap *models.Appointment) error {
		appointment.Cancel(ap)
		return nil
	})
}

func (s *Store) MarkCompleted(id string, now time.Time) (models.Appointment, error) {
	return s.mutate(id, func(ap *models.Appointment) error {
		return appointment.Complete(ap, now)
	})
}

// mutate runs fn on a copy and only commits it when fn succeeds.
func (s *Store) mutate(id string, fn func(*models.Appointment) error) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}

	next := s.appointments[i].Clone()
	if err := fn(&next); err != nil {
		return models.Appointment{}, err
	}

	s.appointments[i] = next
	s.lastErr = ""
	return next.Clone(), nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (s *Store) Find(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Appointment{}, false
	}
	return s.appointments[i].Clone(), true
}

func (s *Store) Snapshot() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, ap := range s.appointments {
		out = append(out, ap.Clone())
	}
	return out
}

// --------------------------------------------------
// Selection
// --------------------------------------------------

func (s *Store) Select(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.selectedID = ""
		return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
	}

	s.selectedID = id
	return s.appointments[i].Clone(), nil
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = ""
}

func (s *Store) Selected() (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return models.Appointment{}, false
	}
	i := s.indexOf(s.selectedID)
	if i < 0 {
		return models.Appointment{}, false
	}
	return s.appointments[i].Clone(), true
}

func (s *Store) indexOf(id string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// Compile-time check
var _ appointment.Repository = (*Store)(nil)
