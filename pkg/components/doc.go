// Package components provides theme-aware terminal UI controls built on lipgloss.
//
// # Overview
//
// The package ships two primitives, Button and TextField, a Provider that
// scopes a theme to a subtree, and two Bubble Tea models (Input and
// ButtonControl) that make the primitives interactive.
//
// # Theme propagation
//
// Themes travel through RenderContext rather than global state. A Provider
// publishes its theme into the context for the duration of its children's
// rendering and restores the previous theme afterwards:
//
//	page := components.NewProvider("dark",
//		components.NewButton("Save").WithColor(theme.RoleSuccess),
//		components.NewProvider("light", components.NewButton("Preview")),
//		components.NewButton("Cancel").WithVariant(components.ButtonOutlined),
//	)
//	output := page.ViewWithContext(components.DefaultContext().WithParentWidth(80))
//
// "Save" and "Cancel" render with the dark theme, "Preview" with the light one.
//
// # Validation
//
// A TextField carries an ordered list of validation rules. Its error state
// is recomputed from the current value whenever it renders or its value
// changes; the first violated rule's message replaces the helper text:
//
//	email := components.NewTextField("email").
//		WithLabel("Email").
//		WithValidations(
//			validation.Required("Email is required"),
//			validation.PatternString(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, "Invalid email format"),
//		)
//	email.SetValue("nope")
//	msg, _ := email.Error() // "Invalid email format"
//
// Fields whose value was never supplied are not validated.
//
// # Appearance
//
// Button.Appearance and TextField.Appearance return the computed visual
// description (colours, border, padding, width) without rendering, which is
// what the renderers themselves feed into lipgloss.
package components
