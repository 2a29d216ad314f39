package config

// Catalog is a YAML document describing themes, forms and buttons to render.
type Catalog struct {
	Theme  string      `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Themes []ThemeSpec `yaml:"themes,omitempty" validate:"omitempty,dive"`
	Forms  []Form      `yaml:"forms" validate:"required,min=1,dive"`
}

// ThemeSpec derives a custom theme from a built-in one.
type ThemeSpec struct {
	Name         string              `yaml:"name" validate:"required,theme_name"`
	Base         string              `yaml:"base,omitempty" validate:"omitempty,oneof=light dark"`
	Mode         string              `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark"`
	Palette      map[string]RoleSpec `yaml:"palette,omitempty" validate:"omitempty,dive,keys,oneof=primary secondary success warning error info,endkeys"`
	Background   *BackgroundSpec     `yaml:"background,omitempty"`
	Text         *TextSpec           `yaml:"text,omitempty"`
	Divider      string              `yaml:"divider,omitempty" validate:"omitempty,hexcolor"`
	BorderRadius string              `yaml:"borderRadius,omitempty"`
}

// RoleSpec overrides the colour set of one semantic role.
type RoleSpec struct {
	Main         string `yaml:"main" validate:"required,hexcolor"`
	Dark         string `yaml:"dark,omitempty" validate:"omitempty,hexcolor"`
	Light        string `yaml:"light,omitempty" validate:"omitempty,hexcolor"`
	ContrastText string `yaml:"contrastText,omitempty" validate:"omitempty,hexcolor"`
	Disabled     string `yaml:"disabled,omitempty" validate:"omitempty,hexcolor"`
}

// BackgroundSpec overrides surface colours.
type BackgroundSpec struct {
	Default string `yaml:"default,omitempty" validate:"omitempty,hexcolor"`
	Paper   string `yaml:"paper,omitempty" validate:"omitempty,hexcolor"`
}

// TextSpec overrides text colours.
type TextSpec struct {
	Primary   string `yaml:"primary,omitempty" validate:"omitempty,hexcolor"`
	Secondary string `yaml:"secondary,omitempty" validate:"omitempty,hexcolor"`
	Disabled  string `yaml:"disabled,omitempty" validate:"omitempty,hexcolor"`
}

// Form groups fields and buttons under an optional nested theme.
type Form struct {
	Name    string       `yaml:"name" validate:"required,control_id"`
	Title   string       `yaml:"title,omitempty"`
	Theme   string       `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Fields  []Field      `yaml:"fields,omitempty" validate:"omitempty,dive"`
	Buttons []ButtonSpec `yaml:"buttons,omitempty" validate:"omitempty,dive"`
}

// Field describes a text field. A nil Value means the user has not
// interacted with the field yet, so its rules are not evaluated.
type Field struct {
	ID           string     `yaml:"id" validate:"required,control_id"`
	Name         string     `yaml:"name,omitempty"`
	Label        string     `yaml:"label,omitempty"`
	Placeholder  string     `yaml:"placeholder,omitempty"`
	Type         string     `yaml:"type,omitempty" validate:"omitempty,oneof=text email password number"`
	Value        *string    `yaml:"value,omitempty"`
	DefaultValue *string    `yaml:"defaultValue,omitempty"`
	HelperText   string     `yaml:"helperText,omitempty"`
	Size         string     `yaml:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Variant      string     `yaml:"variant,omitempty" validate:"omitempty,oneof=outlined filled standard"`
	Disabled     bool       `yaml:"disabled,omitempty"`
	ReadOnly     bool       `yaml:"readOnly,omitempty"`
	FullWidth    bool       `yaml:"fullWidth,omitempty"`
	AutoFocus    bool       `yaml:"autoFocus,omitempty"`
	Validations  []RuleSpec `yaml:"validations,omitempty" validate:"omitempty,dive"`
}

// RuleSpec is the data form of a validation rule. Value holds the pattern
// for pattern rules and the limit for length rules.
type RuleSpec struct {
	Type    string `yaml:"type" validate:"required"`
	Value   any    `yaml:"value,omitempty"`
	Message string `yaml:"message"`
}

// ButtonSpec describes a button.
type ButtonSpec struct {
	ID        string `yaml:"id,omitempty" validate:"omitempty,control_id"`
	Label     string `yaml:"label" validate:"required"`
	Variant   string `yaml:"variant,omitempty" validate:"omitempty,oneof=contained outlined text"`
	Size      string `yaml:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	Color     string `yaml:"color,omitempty" validate:"omitempty,oneof=primary secondary success warning error info"`
	Disabled  bool   `yaml:"disabled,omitempty"`
	FullWidth bool   `yaml:"fullWidth,omitempty"`
	StartIcon string `yaml:"startIcon,omitempty"`
	EndIcon   string `yaml:"endIcon,omitempty"`
}

// Form returns the form named name.
func (c *Catalog) Form(name string) (Form, bool) {
	for _, form := range c.Forms {
		if form.Name == name {
			return form, true
		}
	}
	return Form{}, false
}

// Field returns the field with the given id.
func (f Form) Field(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
