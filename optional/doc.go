// Package optional turns absent values into explicit errors.
//
// Go has no single optional type, so the package covers the common shapes:
// pointers (Unwrap), comma-ok pairs (UnwrapOK) and interface values
// (UnwrapAs). An absent value yields *AbsentError; a present value of the
// wrong dynamic type yields *CastError. Both remember where the unwrap
// happened.
//
//	func decode(m map[string]any) (User, error) {
//		name, err := optional.UnwrapAs[string](m["name"])
//		if err != nil {
//			return User{}, err
//		}
//		...
//	}
package optional
