package builder

// Field reads and writes a single field F of value type T.
type Field[T, F any] struct {
	get func(T) F
	set func(*T, F)
}

// NewField creates field accessor from getter and setter.
func NewField[T, F any](get func(T) F, set func(*T, F)) Field[T, F] {
	return Field[T, F]{get: get, set: set}
}

func (f Field[T, F]) Get(v T) F {
	return f.get(v)
}

func (f Field[T, F]) Set(v *T, x F) {
	f.set(v, x)
}

// Compose returns accessor of field inner nested in field outer.
//
// When M is a pointer type the inner setter writes through the shared pointer.
func Compose[T, M, F any](outer Field[T, M], inner Field[M, F]) Field[T, F] {
	return NewField(
		func(v T) F {
			return inner.get(outer.get(v))
		},
		func(v *T, x F) {
			m := outer.get(*v)
			inner.set(&m, x)
			outer.set(v, m)
		},
	)
}
