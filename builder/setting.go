package builder

// Setting returns copy of v with field set to x.
//
//	older := builder.Setting(person, age, 51)
func Setting[T, F any](v T, field Field[T, F], x F) T {
	field.set(&v, x)
	return v
}

// SettingE is like Setting, but the new value is produced by fn which may fail.
// The error from fn is returned as is.
func SettingE[T, F any](v T, field Field[T, F], fn func() (F, error)) (T, error) {
	x, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}
	return Setting(v, field, x), nil
}

// MapValue returns copy of v with field replaced by fn applied to its current value.
//
//	personInFiftyYears := builder.MapValue(person, age, func(a int) int { return a + 50 })
func MapValue[T, F any](v T, field Field[T, F], fn func(F) F) T {
	field.set(&v, fn(field.get(v)))
	return v
}

// MapValueE is like MapValue for transforms which may fail.
// The error from fn is returned as is.
func MapValueE[T, F any](v T, field Field[T, F], fn func(F) (F, error)) (T, error) {
	x, err := fn(field.get(v))
	if err != nil {
		var zero T
		return zero, err
	}
	field.set(&v, x)
	return v, nil
}
