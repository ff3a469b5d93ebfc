package fnb

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens err into its leaf errors. Joined errors (the
// errors.Join kind) are unwrapped recursively, so nested joins come back
// as a flat slice in order.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		leaves := make([]error, 0, len(e.Unwrap()))
		for _, inner := range e.Unwrap() {
			leaves = append(leaves, GetErrors(inner)...)
		}
		return leaves
	}

	return []error{err}
}
