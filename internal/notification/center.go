// Package notification keeps each user's in-app notifications in memory.
package notification

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Type string

const (
	TypeAppointment Type = "appointment"
	TypeMessage     Type = "message"
	TypeReminder    Type = "reminder"
	TypeResults     Type = "results"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAppointment, TypeMessage, TypeReminder, TypeResults:
		return true
	}
	return false
}

const recentWindow = 24 * time.Hour

type Center struct {
	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	byUser map[string][]models.Notification
}

func NewCenter(now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	return &Center{
		now:    now,
		newID:  uuid.NewString,
		byUser: make(map[string][]models.Notification),
	}
}

// list returns the user's slice, seeding the samples on first access.
// Callers hold c.mu.
func (c *Center) list(userID string) []models.Notification {
	items, ok := c.byUser[userID]
	if !ok {
		items = samples(userID, c.now())
		c.byUser[userID] = items
	}
	return items
}

// ===============================
// Reads
// ===============================

func (c *Center) List(userID string) []models.Notification {
	return c.filter(userID, func(models.Notification) bool { return true })
}

func (c *Center) UnreadCount(userID string) int {
	return len(c.Unread(userID))
}

func (c *Center) Unread(userID string) []models.Notification {
	return c.filter(userID, func(n models.Notification) bool { return !n.Read })
}

func (c *Center) ByType(userID string, t Type) []models.Notification {
	return c.filter(userID, func(n models.Notification) bool { return n.Type == string(t) })
}

// Recent returns what arrived within the last 24 hours.
func (c *Center) Recent(userID string) []models.Notification {
	cutoff := c.now().Add(-recentWindow)
	return c.filter(userID, func(n models.Notification) bool { return n.Date.After(cutoff) })
}

func (c *Center) filter(userID string, keep func(models.Notification) bool) []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []models.Notification{}
	for _, n := range c.list(userID) {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// ===============================
// Writes
// ===============================

func (c *Center) Create(userID string, n models.Notification) (models.Notification, error) {
	if n.Title == "" {
		return models.Notification{}, domain.NewValidationError("title", "is required")
	}
	if !Type(n.Type).Valid() {
		return models.Notification{}, domain.NewValidationError("type", fmt.Sprintf("unknown type %q", n.Type))
	}

	n.ID = c.newID()
	n.UserID = userID
	n.Read = false
	if n.Date.IsZero() {
		n.Date = c.now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byUser[userID] = slices.Insert(c.list(userID), 0, n)
	return n, nil
}

func (c *Center) MarkRead(userID, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.list(userID)
	i := slices.IndexFunc(items, func(n models.Notification) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	items[i].Read = true
	return nil
}

func (c *Center) MarkAllRead(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.list(userID)
	for i := range items {
		items[i].Read = true
	}
}

func (c *Center) Delete(userID, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.list(userID)
	i := slices.IndexFunc(items, func(n models.Notification) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	c.byUser[userID] = slices.Delete(items, i, i+1)
	return nil
}

// Clear empties the list; it stays empty instead of being re-seeded.
func (c *Center) Clear(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byUser[userID] = []models.Notification{}
}

func samples(userID string, now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:      "1",
			UserID:  userID,
			Title:   "Appointment Confirmed",
			Message: "Your appointment with Dr. Smith has been confirmed for tomorrow at 10:00 AM.",
			Type:    string(TypeAppointment),
			Date:    now.Add(-30 * time.Minute),
		},
		{
			ID:      "2",
			UserID:  userID,
			Title:   "New Message",
			Message: "You have a new message from Dr. Johnson regarding your test results.",
			Type:    string(TypeMessage),
			Date:    now.Add(-2 * time.Hour),
		},
		{
			ID:      "3",
			UserID:  userID,
			Title:   "Medication Reminder",
			Message: "Don't forget to take your medication today.",
			Type:    string(TypeReminder),
			Read:    true,
			Date:    now.Add(-24 * time.Hour),
		},
		{
			ID:      "4",
			UserID:  userID,
			Title:   "Appointment Rescheduled",
			Message: "Your appointment with Dr. Williams has been rescheduled to Friday at 11:00 AM.",
			Type:    string(TypeAppointment),
			Read:    true,
			Date:    now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:      "5",
			UserID:  userID,
			Title:   "Lab Results Available",
			Message: "Your recent lab results are now available. Please check your health records.",
			Type:    string(TypeResults),
			Date:    now.Add(-2 * 24 * time.Hour),
		},
	}
}
