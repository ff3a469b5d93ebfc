package res

import (
	"errors"

	"github.com/ib-77/fnblock/pkg/fnb"
)

func Map[In any, Out any](input fnb.Result[In],
	onOk func(in In) Out) fnb.Result[Out] {

	if input.IsOk() {
		return fnb.Ok(onOk(input.Value()))
	}
	return fnb.ErrFrom[In, Out](input)
}

func Switch[In any, Out any](input fnb.Result[In],
	onOk func(in In) fnb.Result[Out]) fnb.Result[Out] {

	if input.IsOk() {
		return onOk(input.Value())
	}
	return fnb.ErrFrom[In, Out](input)
}

// Try composes an ordinary (Out, error) function into the pipeline. A
// returned error originates a fresh failure.
func Try[In any, Out any](input fnb.Result[In],
	onTry func(in In) (Out, error)) fnb.Result[Out] {

	if input.IsOk() {
		return fnb.Of(onTry(input.Value()))
	}
	return fnb.ErrFrom[In, Out](input)
}

// MapErr rewrites the error of a failure. The rewritten error is a new
// failure origin; use ErrFrom when a failure should pass through untouched.
func MapErr[T any](input fnb.Result[T],
	onErr func(err error) error) fnb.Result[T] {

	if input.IsOk() {
		return input
	}
	return fnb.Err[T](onErr(input.Err()))
}

func Tee[T any](input fnb.Result[T],
	onOk func(in T)) fnb.Result[T] {

	if input.IsOk() {
		onOk(input.Value())
	}
	return input
}

func DoubleTee[T any](input fnb.Result[T],
	onOk func(in T),
	onErr func(err error)) fnb.Result[T] {

	if input.IsOk() {
		onOk(input.Value())
	} else {
		onErr(input.Err())
	}
	return input
}

// Collect gathers the values of all inputs; the first failure wins and is
// carried through with its identity intact.
func Collect[T any](inputs ...fnb.Result[T]) fnb.Result[[]T] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsErr() {
			return fnb.ErrFrom[T, []T](in)
		}
		values = append(values, in.Value())
	}
	return fnb.Ok(values)
}

// CollectAll gathers the values of all inputs, accumulating every failure
// into one joined error instead of stopping at the first.
func CollectAll[T any](inputs ...fnb.Result[T]) fnb.Result[[]T] {
	values := make([]T, 0, len(inputs))
	var errs []error
	for _, in := range inputs {
		if in.IsErr() {
			errs = append(errs, in.Err())
			continue
		}
		values = append(values, in.Value())
	}
	if len(errs) > 0 {
		return fnb.Err[[]T](errors.Join(errs...))
	}
	return fnb.Ok(values)
}

func Finally[In any, Out any](input fnb.Result[In],
	onOk func(in In) Out,
	onErr func(err error) Out) Out {

	if input.IsOk() {
		return onOk(input.Value())
	}
	return onErr(input.Err())
}
