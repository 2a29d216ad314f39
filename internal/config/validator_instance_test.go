package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	assert.Same(t, validatorInstance(), validatorInstance())
}

func TestCustomValidations(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name  string
		tag   string
		value string
		valid bool
	}{
		{"theme name", "theme_name", "ocean", true},
		{"theme name with dash", "theme_name", "high-contrast", true},
		{"theme name leading digit", "theme_name", "9lives", false},
		{"theme name with space", "theme_name", "sea blue", false},
		{"control id", "control_id", "first_name", true},
		{"control id digits", "control_id", "42", true},
		{"control id with dot", "control_id", "user.email", false},
		{"control id empty", "control_id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
