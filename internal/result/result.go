// Package result is the uniform outcome every access-layer operation returns:
// either a success carrying a value or a failure carrying a human-readable reason.
package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
)

type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation_failure"
	KindGeneration Kind = "generation_failure"
	KindConflict   Kind = "conflict"
	KindCancelled  Kind = "cancelled"
	KindInternal   Kind = "internal"
)

type Result[T any] struct {
	OK     bool   `json:"ok"`
	Value  T      `json:"value,omitzero"`
	Reason string `json:"reason,omitempty"`
	Kind   Kind   `json:"kind,omitempty"`
}

// Ack is the payload of operations that only acknowledge success.
type Ack struct{}

func Ok[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{Reason: err.Error(), Kind: KindOf(err)}
}

// KindOf classifies err against the domain sentinels.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return KindNotFound
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, domain.ErrGeneration):
		return KindGeneration
	case errors.Is(err, domain.ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	default:
		return KindInternal
	}
}

// Err turns a failed result back into an error; nil when r succeeded.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return fmt.Errorf("%s: %s", r.Kind, r.Reason)
}

// Guard runs fn and converts both its error and any panic into a failure,
// so nothing escapes the operation boundary.
func Guard[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result[T]{
				Reason: fmt.Sprintf("unexpected failure: %v", rec),
				Kind:   KindInternal,
			}
		}
	}()

	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}
