// Package slices provides generic helpers for working with slices in Go.
//
// Besides the plain functional helpers (Map, Filter, Sorted) it offers
// accessor-based variants: an accessor is any func(E) F reading one field of
// an element, typically a method expression or a short closure.
//
//	names := slices.Map(users, User.Name)
//	byAge := slices.SortedBy(users, func(u User) int { return u.Age })
//	admins := slices.FilterBy(users, User.Role, RoleAdmin)
//
// Unless stated otherwise functions never modify the input slice.
package slices
