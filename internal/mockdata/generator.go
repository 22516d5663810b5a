// Package mockdata builds the synthetic appointment batches served by fetch.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const PendingNotes = "Patient notes will be added after the appointment."

var Symptoms = []string{
	"Headache", "Fever", "Cough", "Fatigue", "Nausea", "Dizziness",
	"Chest pain", "Shortness of breath", "Back pain", "Joint pain",
}

const (
	firstHour     = 9
	hourSpan      = 8
	maxSymptoms   = 3
	pastDays      = 30
	futureDays    = 30
	createdWithin = 90 * 24 * time.Hour
)

// Doctors is what the generator draws from.
type Doctors interface {
	Len() int
	At(i int) models.Doctor
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithIDs(next func() string) Option {
	return func(g *Generator) { g.newID = next }
}

type Generator struct {
	doctors Doctors
	now     func() time.Time
	newID   func() string

	mu  sync.Mutex
	rng *rand.Rand
}

func New(doctors Doctors, opts ...Option) *Generator {
	g := &Generator{
		doctors: doctors,
		now:     time.Now,
		newID:   uuid.NewString,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns count records for patientID. Half land in the last 30 days
// with any status; the rest are scheduled within the next 30 days.
func (g *Generator) Generate(patientID string, count int) ([]models.Appointment, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative batch size %d", domain.ErrGeneration, count)
	}
	if g.doctors == nil || g.doctors.Len() == 0 {
		return nil, fmt.Errorf("%w: empty doctor directory", domain.ErrGeneration)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	out := make([]models.Appointment, 0, count)

	for range count {
		out = append(out, g.one(patientID, now))
	}
	return out, nil
}

func (g *Generator) one(patientID string, now time.Time) models.Appointment {
	isPast := g.rng.Float64() > 0.5
	doc := g.doctors.At(g.rng.IntN(g.doctors.Len()))
	typ := appointment.Types[g.rng.IntN(len(appointment.Types))]

	status := appointment.StatusScheduled
	if isPast {
		status = appointment.Statuses[g.rng.IntN(len(appointment.Statuses))]
	}

	var day time.Time
	if isPast {
		day = now.AddDate(0, 0, -g.rng.IntN(pastDays))
	} else {
		day = now.AddDate(0, 0, g.rng.IntN(futureDays)+1)
	}

	ap := models.Appointment{
		ID:        g.newID(),
		PatientID: patientID,
		DoctorID:  doc.ID,
		Doctor:    &doc,
		Date:      day.Format(appointment.DateLayout),
		Time:      g.slot(),
		Status:    string(status),
		Type:      string(typ),
		Symptoms:  g.symptoms(),
		CreatedAt: now.Add(-time.Duration(g.rng.Int64N(int64(createdWithin)))),
	}
	if g.rng.Float64() > 0.7 {
		ap.Notes = PendingNotes
	}
	return ap
}

func (g *Generator) slot() string {
	hour := firstHour + g.rng.IntN(hourSpan)
	minute := 0
	if g.rng.Float64() > 0.5 {
		minute = 30
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// symptoms draws up to three tags; repeated draws are skipped, not redrawn.
func (g *Generator) symptoms() []string {
	n := g.rng.IntN(maxSymptoms + 1)
	if n == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]bool, n)
	for range n {
		s := Symptoms[g.rng.IntN(len(Symptoms))]
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
