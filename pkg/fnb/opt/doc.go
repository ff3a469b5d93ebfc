// Package opt contains single-value, synchronous combinators that operate
// on Option[T]. These functions form the combinator-chain counterpart of
// the scope wrappers for code that prefers explicit composition.
//
// Highlights:
// - Map/Switch: transform a held value (Switch may drop it)
// - Filter: keep the value only when a predicate holds
// - Or: first present value wins
// - Tee: side-effect helper on the present path
// - Collect: all-or-none aggregation of many options
// - Finally: reduce to a concrete value via present/absent handlers
// - ToResult/FromResult/FromGetter: track changing and adapters
package opt
