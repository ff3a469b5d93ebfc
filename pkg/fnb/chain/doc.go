// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Or/And: combine chains by first-success or all-success
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// The chain stays on one value type; moving between types is the job of
// the res package combinators.
package chain
