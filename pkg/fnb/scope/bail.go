package scope

import (
	"github.com/ib-77/fnblock/pkg/fnb"
)

// Need returns the value held by o, or bails out of the enclosing wrapper
// when o is None.
func Need[T any](o fnb.Option[T]) T {
	if v, ok := o.Get(); ok {
		return v
	}
	panic(escape{err: ErrNoValue})
}

// Want returns the value held by r, or bails out of the enclosing wrapper
// with the error of r. An empty Result bails with ErrNoValue.
func Want[T any](r fnb.Result[T]) T {
	if v, ok := r.Get(); ok {
		return v
	}
	if fnb.IsNil(r.Err()) {
		panic(escape{err: ErrNoValue})
	}
	panic(escape{err: r.Err()})
}

// Try adapts an ordinary Go call in tuple position, as in
// scope.Try(strconv.Atoi(s)): it returns the value or bails with the
// error.
func Try[T any](v T, err error) T {
	if fnb.IsNil(err) {
		return v
	}
	panic(escape{err: err})
}

// Check bails with err when it is non-nil.
func Check(err error) {
	if !fnb.IsNil(err) {
		panic(escape{err: err})
	}
}
