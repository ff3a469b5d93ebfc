package fnb

// Option is a value slot that either holds a value or nothing. The zero
// value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// When wraps v into Some if the predicate holds for it, None otherwise.
func When[T any](v T, predicate func(T) bool) Option[T] {
	if predicate(v) {
		return Some(v)
	}
	return None[T]()
}

// OptionOf lifts a comma-ok pair, e.g. a map lookup, into an Option.
func OptionOf[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the held value, or the zero value of T when none.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) ValueOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}
