package result

import (
	"context"
	"fmt"
)

// Future is an operation running on its own goroutine. The caller decides
// when to wait for it and cancels it through the context given to Async.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

func Async[T any](ctx context.Context, fn func(context.Context) Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if rec := recover(); rec != nil {
				f.res = Result[T]{
					Reason: fmt.Sprintf("unexpected failure: %v", rec),
					Kind:   KindInternal,
				}
			}
		}()
		f.res = fn(ctx)
	}()
	return f
}

func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the operation finished and returns its outcome.
func (f *Future[T]) Wait() Result[T] {
	<-f.done
	return f.res
}
