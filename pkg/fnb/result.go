package fnb

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts a (value, error) pair into a Result. A typed nil error still
// counts as success.
func Of[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Ok(v)
	}
	return Err[T](err)
}

// ErrFrom carries a failure across a value-type change without minting a
// new identity: the error, id and creation time of the source result are
// preserved. Combinators use it when they propagate an existing failure;
// Err is for originating a new one.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

func (r Result[T]) IsEmpty() bool {
	return !r.ok && r.err == nil
}

func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) ValueOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
