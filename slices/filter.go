package slices

// Filter reduces slice values using given function.
// It operates with a copy of given slice
func Filter[S ~[]T, T any](s S, fn func(T) bool) S {
	if len(s) == 0 {
		return s
	}
	result := make(S, 0, len(s))
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterBy returns elements whose key equals given value, keeping their order.
//
//	short := slices.FilterBy(names, func(s string) int { return len(s) }, 5)
func FilterBy[S ~[]T, T any, K comparable](s S, key func(T) K, value K) S {
	return Filter(s, func(v T) bool {
		return key(v) == value
	})
}

// Reject is the complement of Filter: it keeps values for which fn is false.
func Reject[S ~[]T, T any](s S, fn func(T) bool) S {
	return Filter(s, func(v T) bool {
		return !fn(v)
	})
}
