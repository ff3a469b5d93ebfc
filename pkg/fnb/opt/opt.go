package opt

import (
	"github.com/ib-77/fnblock/pkg/fnb"
)

func Map[In any, Out any](input fnb.Option[In],
	onSome func(in In) Out) fnb.Option[Out] {

	if input.IsSome() {
		return fnb.Some(onSome(input.Value()))
	}
	return fnb.None[Out]()
}

func Switch[In any, Out any](input fnb.Option[In],
	onSome func(in In) fnb.Option[Out]) fnb.Option[Out] {

	if input.IsSome() {
		return onSome(input.Value())
	}
	return fnb.None[Out]()
}

func Filter[T any](input fnb.Option[T],
	keep func(in T) bool) fnb.Option[T] {

	if input.IsSome() && keep(input.Value()) {
		return input
	}
	return fnb.None[T]()
}

// Or returns input when it holds a value, the alternative otherwise.
func Or[T any](input fnb.Option[T], alternative fnb.Option[T]) fnb.Option[T] {
	if input.IsSome() {
		return input
	}
	return alternative
}

func Tee[T any](input fnb.Option[T],
	onSome func(in T)) fnb.Option[T] {

	if input.IsSome() {
		onSome(input.Value())
	}
	return input
}

// Collect gathers the values of all inputs, or returns None as soon as any
// input is absent.
func Collect[T any](inputs ...fnb.Option[T]) fnb.Option[[]T] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsNone() {
			return fnb.None[[]T]()
		}
		values = append(values, in.Value())
	}
	return fnb.Some(values)
}

func Finally[In any, Out any](input fnb.Option[In],
	onSome func(in In) Out,
	onNone func() Out) Out {

	if input.IsSome() {
		return onSome(input.Value())
	}
	return onNone()
}

// ToResult moves to the failure track: a held value becomes a success,
// absence becomes a failure carrying err.
func ToResult[T any](input fnb.Option[T], err error) fnb.Result[T] {
	if input.IsSome() {
		return fnb.Ok(input.Value())
	}
	return fnb.Err[T](err)
}

// FromResult keeps the success value and forgets the error, if any.
func FromResult[T any](input fnb.Result[T]) fnb.Option[T] {
	return fnb.OptionOf(input.Get())
}

// FromGetter lifts any comma-ok container into an Option.
func FromGetter[T any](g fnb.Getter[T]) fnb.Option[T] {
	return fnb.OptionOf(g.Get())
}
