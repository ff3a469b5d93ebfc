package scope

// Catch runs body immediately and returns its value. A bail inside body
// is recovered and mapped to a substitute value by rescue, so the caller
// always gets a T back: every failure the body can bail with needs a
// mapping. Discriminate inside rescue with errors.Is or errors.As; a bail
// on an absent Option arrives as ErrNoValue.
//
// rescue is mandatory. Passing nil panics right away instead of at the
// first failure.
//
// Experimental: the recovery contract of Catch may still change.
func Catch[T any](body func() T, rescue func(err error) T) (out T) {
	if rescue == nil {
		panic("scope: Catch requires a rescue handler")
	}
	defer func() {
		if r := recover(); r != nil {
			if esc, ok := r.(escape); ok {
				out = rescue(esc.err)
				return
			}
			panic(r)
		}
	}()
	return body()
}
