package optional

import (
	"reflect"
)

// Unwrap returns the value v points to, or an error if v is nil.
//
//	func doSomethingCritical(value *Value) error {
//		v, err := optional.Unwrap(value)
//		if err != nil {
//			return err
//		}
//		use(v)
//		return nil
//	}
func Unwrap[T any](v *T, opts ...Option) (T, error) {
	if v == nil {
		p := newParams(opts)
		return zero[T](), absent(p, callerSite(p.skip))
	}
	return *v, nil
}

// UnwrapOK is Unwrap for comma-ok producers such as map lookups.
//
//	port, ok := ports[name]
//	p, err := optional.UnwrapOK(port, ok)
func UnwrapOK[T any](v T, ok bool, opts ...Option) (T, error) {
	if !ok {
		p := newParams(opts)
		return zero[T](), absent(p, callerSite(p.skip))
	}
	return v, nil
}

// UnwrapAs unwraps interface value v and asserts it to T.
//
// A nil interface is absent and the assertion is not attempted. Note that an
// interface holding a typed nil pointer is present.
func UnwrapAs[T any](v any, opts ...Option) (T, error) {
	p := newParams(opts)
	if v == nil {
		return zero[T](), absent(p, callerSite(p.skip))
	}

	res, ok := v.(T)
	if !ok {
		return zero[T](), castFailed[T](p, v, callerSite(p.skip))
	}
	return res, nil
}

// UnwrapPtrAs unwraps pointer v and asserts the pointed value to T.
//
// Both a nil v and a v pointing at a nil interface are absent.
func UnwrapPtrAs[T, W any](v *W, opts ...Option) (T, error) {
	p := newParams(opts)
	if v == nil || any(*v) == nil {
		return zero[T](), absent(p, callerSite(p.skip))
	}

	res, ok := any(*v).(T)
	if !ok {
		return zero[T](), castFailed[T](p, *v, callerSite(p.skip))
	}
	return res, nil
}

func absent(p params, site Site) error {
	if p.err != nil {
		return p.err
	}
	return &AbsentError{Site: site}
}

func castFailed[T any](p params, v any, site Site) error {
	if p.err != nil {
		return p.err
	}
	return &CastError{Value: v, Target: reflect.TypeOf((*T)(nil)).Elem(), Site: site}
}

func zero[T any]() T {
	var t T
	return t
}
