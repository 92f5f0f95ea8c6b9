package builder

import (
	"github.com/mitchellh/copystructure"
)

// Applying calls fn on a copy of v and returns the modified copy.
func Applying[T any](v T, fn func(*T)) T {
	fn(&v)
	return v
}

// ApplyingE is like Applying for transforms which may fail.
// The error from fn is returned as is.
func ApplyingE[T any](v T, fn func(*T) error) (T, error) {
	if err := fn(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Clone returns deep copy of v. Unexported struct fields are not copied.
// A nil interface value is returned as is.
func Clone[T any](v T) T {
	if any(v) == nil {
		return v
	}

	res, ok := copystructure.Must(copystructure.Copy(v)).(T)
	if !ok {
		return v
	}
	return res
}
