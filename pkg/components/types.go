package components

import "strings"

// ButtonVariant selects how a button fills its area.
type ButtonVariant string

const (
	ButtonContained ButtonVariant = "contained"
	ButtonOutlined  ButtonVariant = "outlined"
	ButtonText      ButtonVariant = "text"
)

// Size is the size token shared by buttons and text fields.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// FieldType is the kind of value a text field accepts.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldNumber   FieldType = "number"
)

// FieldVariant selects how a text field draws its input box.
type FieldVariant string

const (
	FieldOutlined FieldVariant = "outlined"
	FieldFilled   FieldVariant = "filled"
	FieldStandard FieldVariant = "standard"
)

func parseToken[T ~string](value string, fallback T, known ...T) T {
	candidate := T(strings.ToLower(strings.TrimSpace(value)))
	for _, k := range known {
		if k == candidate {
			return k
		}
	}
	return fallback
}

// ParseButtonVariant converts a variant name, defaulting to contained.
func ParseButtonVariant(value string) ButtonVariant {
	return parseToken(value, ButtonContained, ButtonContained, ButtonOutlined, ButtonText)
}

// ParseSize converts a size name, defaulting to medium.
func ParseSize(value string) Size {
	return parseToken(value, SizeMedium, SizeSmall, SizeMedium, SizeLarge)
}

// ParseFieldType converts a field type name, defaulting to text.
func ParseFieldType(value string) FieldType {
	return parseToken(value, FieldText, FieldText, FieldEmail, FieldPassword, FieldNumber)
}

// ParseFieldVariant converts a field variant name, defaulting to outlined.
func ParseFieldVariant(value string) FieldVariant {
	return parseToken(value, FieldOutlined, FieldOutlined, FieldFilled, FieldStandard)
}
