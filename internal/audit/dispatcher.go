package audit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentUpdated   = "appointment_updated"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAppointmentCompleted = "appointment_completed"
	ActionAppointmentsFetched  = "appointments_fetched"
)

const queueSize = 100

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
	At       time.Time
}

// AppointmentMeta is the appointment payload carried by events. Clinical
// fields (notes, symptoms) never leave the store through it.
type AppointmentMeta struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

// Sink receives every dispatched event on the worker goroutine.
type Sink interface {
	Record(ev Event) error
}

type SinkFunc func(ev Event) error

func (f SinkFunc) Record(ev Event) error { return f(ev) }

type Dispatcher struct {
	log   *zap.Logger
	sinks []Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(log *zap.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		log:   log.Named("audit"),
		sinks: sinks,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Record(ev); err != nil {
				d.log.Warn("audit sink failed",
					zap.String("action", ev.Action),
					zap.Error(err),
				)
			}
		}
	}
}

// Dispatch never blocks: when the queue is full or the dispatcher is closed
// the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queued ones are handled.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
