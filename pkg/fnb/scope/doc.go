// Package scope delimits regions of ordinary-looking code in which absent
// options and failed results can exit early, the way a return would, but
// only as far as the region boundary. A wrapper takes a closure, runs it
// immediately and converts any bail inside it back into a container value,
// so the enclosing function continues normally.
//
// Highlights:
// - Opt/Res: wrap-and-call constructs returning Option[T]/Result[T]
// - Need/Want: unwrap a container or bail with its absence/error
// - Try/Check: adapt ordinary (T, error) calls and bare error checks
// - Catch: experimental wrapper mapping every bail to a substitute value
// - Block/BlockRes: deprecated original names of Opt/Res
//
// The closure's declared return type doubles as the region's type
// annotation; write scope.Opt[string](...) when it needs spelling out at
// the call site.
//
// Constraints: a bail is a panic under the hood, so operators must run on
// the goroutine that entered the wrapper; starting a goroutine inside the
// body and bailing from it crashes the program. With nested wrappers a
// bail stops at the nearest enclosing one. Panics that are not bails
// cross the wrappers unchanged, and an operator used outside any wrapper
// panics with a message saying so.
package scope
