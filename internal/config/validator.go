package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/uicontrols/pkg/errors"
	"github.com/alexisbeaulieu97/uicontrols/pkg/theme"
)

// ValidateCatalog performs schema and cross-field validation on the catalog.
// Individual validation rules are not checked here: a malformed rule is
// skipped when fields are evaluated, not rejected.
func ValidateCatalog(cat *Catalog) error {
	if cat == nil {
		return apperrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	themeNames := make(map[string]struct{}, len(cat.Themes))
	for i, spec := range cat.Themes {
		key := strings.ToLower(spec.Name)
		if key == theme.NameLight || key == theme.NameDark {
			return apperrors.NewValidationError(fmt.Sprintf("themes[%d].name", i), fmt.Sprintf("%q is a built-in theme", spec.Name), nil)
		}
		if _, exists := themeNames[key]; exists {
			return apperrors.NewValidationError(fmt.Sprintf("themes[%d].name", i), fmt.Sprintf("duplicate theme name %q", spec.Name), nil)
		}
		themeNames[key] = struct{}{}
	}

	formNames := make(map[string]struct{}, len(cat.Forms))
	for i, form := range cat.Forms {
		if _, exists := formNames[form.Name]; exists {
			return apperrors.NewValidationError(fieldForForm(i, "name"), fmt.Sprintf("duplicate form name %q", form.Name), nil)
		}
		formNames[form.Name] = struct{}{}

		if err := validateFormIDs(form, i); err != nil {
			return err
		}
	}

	return nil
}

// validateFormIDs rejects control ids reused within one form.
func validateFormIDs(form Form, index int) error {
	ids := make(map[string]struct{}, len(form.Fields)+len(form.Buttons))

	for j, field := range form.Fields {
		if _, exists := ids[field.ID]; exists {
			return apperrors.NewValidationError(fieldForForm(index, fmt.Sprintf("fields[%d].id", j)), fmt.Sprintf("duplicate control id %q", field.ID), nil)
		}
		ids[field.ID] = struct{}{}
	}

	for j, button := range form.Buttons {
		if button.ID == "" {
			continue
		}
		if _, exists := ids[button.ID]; exists {
			return apperrors.NewValidationError(fieldForForm(index, fmt.Sprintf("buttons[%d].id", j)), fmt.Sprintf("duplicate control id %q", button.ID), nil)
		}
		ids[button.ID] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving the YAML path.
func yamlishFieldName(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func fieldForForm(index int, field string) string {
	return fmt.Sprintf("forms[%d].%s", index, field)
}
