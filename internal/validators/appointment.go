package validators

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// Fields collects field errors and yields one ValidationError.
type Fields struct {
	errs []domain.FieldError
}

func (f *Fields) Add(field, message string) {
	f.errs = append(f.errs, domain.FieldError{Field: field, Message: message})
}

func (f *Fields) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.Add(field, "is required")
	}
}

func (f *Fields) Date(field, value string) {
	if !IsDate(value) {
		f.Add(field, "must be a YYYY-MM-DD date")
	}
}

func (f *Fields) Time(field, value string) {
	if !IsClock(value) {
		f.Add(field, "must be a 24h HH:MM time")
	}
}

func (f *Fields) Status(field, value string) {
	if !appointment.Status(value).Valid() {
		f.Add(field, fmt.Sprintf("unknown status %q", value))
	}
}

func (f *Fields) Type(field, value string) {
	if !appointment.Type(value).Valid() {
		f.Add(field, fmt.Sprintf("unknown type %q", value))
	}
}

// Err returns nil when nothing was collected.
func (f *Fields) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: f.errs}
}

func IsDate(s string) bool {
	_, err := time.Parse(appointment.DateLayout, s)
	return err == nil
}

// IsClock accepts zero-padded HH:MM only, so string order stays time order.
func IsClock(s string) bool {
	if len(s) != len(appointment.TimeLayout) {
		return false
	}
	_, err := time.Parse(appointment.TimeLayout, s)
	return err == nil
}
