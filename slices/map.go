package slices

// Map applies given function to every value of slice.
// Passing a field accessor projects the field of every element, preserving order.
func Map[S ~[]T, T, M any](s S, fn func(T) M) []M {
	if s == nil {
		return []M(nil)
	}
	if len(s) == 0 {
		return make([]M, 0)
	}
	res := make([]M, len(s))
	for i, v := range s {
		res[i] = fn(v)
	}
	return res
}

// MapP applies given function to every pointer to element of slice
func MapP[S ~[]T, T, M any](s S, fn func(*T) M) []M {
	res, _ := MapPE(s, func(v *T) (M, error) { return fn(v), nil })
	return res
}

// MapE applies given function to every value of slice and return slice or first error
func MapE[S ~[]T, T, M any](s S, fn func(T) (M, error)) ([]M, error) {
	return MapPE(s, func(v *T) (M, error) { return fn(*v) })
}

// MapPE is like MapE, but passes pointer to element, so large elements are not copied.
func MapPE[S ~[]T, T, M any](s S, fn func(*T) (M, error)) ([]M, error) {
	if s == nil {
		return []M(nil), nil
	}
	if len(s) == 0 {
		return make([]M, 0), nil
	}
	res := make([]M, len(s))
	for i := range s {
		transformed, err := fn(&s[i])
		if err != nil {
			return nil, err
		}
		res[i] = transformed
	}
	return res, nil
}
