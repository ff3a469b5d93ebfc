package chain

import (
	"github.com/ib-77/fnblock/pkg/fnb"
	"github.com/ib-77/fnblock/pkg/fnb/res"
)

type Chain[T any] struct {
	res fnb.Result[T]
}

func Start[T any](r fnb.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(fnb.Ok(v))
}

func (c Chain[T]) Result() fnb.Result[T] {
	return c.res
}

// Then composes functions that already return fnb.Result[T]
func (c Chain[T]) Then(onOk func(t T) fnb.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Value())}
}

// ThenTry composes functions that return (T, error), like parser or repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: fnb.Of(try(c.res.Value()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: fnb.Ok(onOk(c.res.Value()))}
}

// Or returns the first successful chain among c and the alternative; when
// both failed, the failure of c stands.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And requires both chains to succeed; the first failure stands, otherwise
// the value of the required chain.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to res.Finally
func (c Chain[T]) Finally(onOk func(T) T, onErr func(error) T) T {
	return res.Finally(c.res, onOk, onErr)
}
