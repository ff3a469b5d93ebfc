// Package res contains single-value, synchronous combinators that operate
// on Result[T]. Failures flow through every combinator untouched, keeping
// the id and creation time of the result that originated them.
//
// Highlights:
// - Map/Switch: transform a successful value (Switch may fail)
// - Try: call a function (Out, error) and convert error to failure
// - MapErr: rewrite the error of a failure
// - Tee/DoubleTee: side-effect helpers
// - Collect/CollectAll: aggregation, first-failure or all-failures
// - Finally: reduce to a concrete value via success/error handlers
package res
