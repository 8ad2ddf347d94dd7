package assoc

import (
	"fmt"
	"reflect"

	errors2 "github.com/amp-labs/amp-assoc/errors"
)

// checkArguments rejects keys and values that are nil or point at nothing.
// Zero values of non-nillable types (0, "", empty structs) are accepted.
func checkArguments(key, value any) error {
	switch {
	case isNilish(key) && isNilish(value):
		return fmt.Errorf("%w: key and value must not be nil", errors2.ErrInvalidArgument)
	case isNilish(key):
		return fmt.Errorf("%w: key must not be nil", errors2.ErrInvalidArgument)
	case isNilish(value):
		return fmt.Errorf("%w: value must not be nil (key %v)", errors2.ErrInvalidArgument, key)
	default:
		return nil
	}
}

func isNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
