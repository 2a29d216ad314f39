// Package theme defines the visual vocabulary shared by uicontrols components.
//
// A Theme is an immutable, named bundle of colour, typography, shape,
// spacing and shadow tokens. Two themes ship with the package, Light and
// Dark; more can be added to a Registry. Colours are grouped by semantic
// Role (primary, secondary, success, warning, error, info) so renderers ask
// for "the error colour" rather than a hex value.
//
// # Selecting a theme
//
// Lookup resolves an identifier against the built-in registry. Unknown
// identifiers resolve to the light theme:
//
//	t := theme.Lookup("dark")
//	same := theme.Lookup("sepia") == theme.Light() // true
//
// # Scoped overrides
//
// A Context carries the current theme through a render pass. Boundaries
// publish an override and restore it when they exit:
//
//	ctx := theme.NewContext(theme.Light())
//	restore := ctx.Publish(theme.Dark())
//	_ = ctx.Current() // dark
//	restore()
//	_ = ctx.Current() // light again
//
// Resolve is the pure form of the same lookup over an explicit stack.
package theme
