package scope

import (
	"errors"

	"github.com/ib-77/fnblock/pkg/fnb"
)

// ErrNoValue is the error a bail on an absent Option carries. Res reports
// it as the failure error; Catch rescue handlers match it with errors.Is.
var ErrNoValue = errors.New("no value")

// escape is the bail payload. Only the wrappers in this package recover
// it; every other panic value passes through them unchanged.
type escape struct {
	err error
}

// Error makes a stray bail print a usable message. It is only ever seen
// when an operator runs outside a wrapper.
func (e escape) Error() string {
	return "scope: operator used outside Opt, Res or Catch: " + e.err.Error()
}

// Opt runs body immediately and returns its Option. A bail by Need, Want,
// Try or Check inside body makes Opt return None instead; the bail error,
// if any, is dropped. Use Res when the error matters.
func Opt[T any](body func() fnb.Option[T]) (out fnb.Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(escape); ok {
				out = fnb.None[T]()
				return
			}
			panic(r)
		}
	}()
	return body()
}

// Res runs body immediately and returns its Result. A bail inside body
// makes Res return a failure carrying the bail error; a bail on an absent
// Option carries ErrNoValue.
func Res[T any](body func() fnb.Result[T]) (out fnb.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			if esc, ok := r.(escape); ok {
				out = fnb.Err[T](esc.err)
				return
			}
			panic(r)
		}
	}()
	return body()
}

// Block runs body immediately and returns its Option.
//
// Deprecated: Use Opt instead. Block is the wrapper's original name and
// behaves identically.
func Block[T any](body func() fnb.Option[T]) fnb.Option[T] {
	return Opt(body)
}

// BlockRes runs body immediately and returns its Result.
//
// Deprecated: Use Res instead. BlockRes is the wrapper's original name
// and behaves identically.
func BlockRes[T any](body func() fnb.Result[T]) fnb.Result[T] {
	return Res(body)
}
