// Package fnb defines the two value containers everything else in this
// module operates on, plus the conversions that inject a bare value into
// them.
//
// Core types:
// - Option[T]: a value that is either present (some) or absent (none)
// - Result[T]: a value that is either a success or a failure with an error
//
// Conversions, usable as the trailing call of an expression chain:
// - Some/None/When/OptionOf: build an Option
// - Ok/Err/Of: build a Result; Of lifts an ordinary (value, error) pair
// - ErrFrom: carry a failure across a value-type change, keeping identity
//
// Every Result records an id and a UTC creation time when it is built.
// Combinators in the res package preserve that identity when they pass a
// failure along, so the origin of an error can be traced through a chain.
//
// For transformations over these containers see the opt and res packages;
// for localized early-exit propagation see the scope package.
package fnb
