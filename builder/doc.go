// Package builder implements copy-on-mutate helpers for plain value types.
//
// Every helper receives the value by value, modifies the copy and returns it,
// so the caller's variable is never changed:
//
//	type Label struct {
//		Text  string
//		Color string
//	}
//
//	var text = builder.NewField(
//		func(l Label) string { return l.Text },
//		func(l *Label, v string) { l.Text = v },
//	)
//
//	green := builder.Applying(base, func(l *Label) { l.Color = "green" })
//	greeting := builder.Setting(green, text, "hello")
//
// Copies are shallow. Pointers, maps and slices inside the value are shared
// with the original, and mutating through them is visible to every holder.
// Use Clone to break the sharing first when that is not desired.
package builder
