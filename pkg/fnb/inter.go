package fnb

// Getter defines the comma-ok read surface shared by Option and Result.
// Code that only cares whether a value is there can accept a Getter and
// work with either container, or with any third-party type that exposes
// the same method.
type Getter[T any] interface {
	// Get returns the held value and whether it is actually present
	Get() (T, bool)
}
