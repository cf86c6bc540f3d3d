package board

import "errors"

// State of an asynchronously produced value.
type State int

const (
	StatePending State = iota
	StateFailed
	StateReady
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFailed:
		return "failed"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Result is either Pending, Failed(err) or Ready(value).
// The zero value is Pending.
type Result[T any] struct {
	state State
	value T
	err   error
}

func Pending[T any]() Result[T] { return Result[T]{state: StatePending} }

func Failed[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return Result[T]{state: StateFailed, err: err}
}

func Ready[T any](v T) Result[T] { return Result[T]{state: StateReady, value: v} }

func (r Result[T]) State() State { return r.state }

// Value returns the value and true when the result is ready.
func (r Result[T]) Value() (T, bool) {
	if r.state != StateReady {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err is non-nil only for failed results.
func (r Result[T]) Err() error { return r.err }

// Combine merges two results pointwise. Pending wins over Failed, Failed wins
// over Ready; f only runs when both inputs are ready.
func Combine[A, B, C any](a Result[A], b Result[B], f func(A, B) C) Result[C] {
	if a.state == StatePending || b.state == StatePending {
		return Pending[C]()
	}
	if a.state == StateFailed || b.state == StateFailed {
		return Failed[C](errors.Join(a.err, b.err))
	}
	return Ready(f(a.value, b.value))
}
