package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/uicontrols/pkg/errors"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	validYAML := `theme: dark
themes:
  - name: ocean
    base: dark
    palette:
      primary: {main: "#0ea5e9", contrastText: "#ffffff"}
forms:
  - name: signup
    title: Create account
    theme: ocean
    fields:
      - id: email
        label: Email
        type: email
        value: ""
        validations:
          - {type: required, message: Email is required}
    buttons:
      - {label: Submit, variant: contained, color: primary}
`

	invalidYAML := `theme: [dark]
forms:
  - name: broken
`

	unknownKey := `forms:
  - name: signup
    fields:
      - id: email
        lable: Email
`

	missingForms := `theme: light
`

	badColour := `themes:
  - name: ocean
    palette:
      primary: {main: "blue"}
forms:
  - name: f
`

	badVariant := `forms:
  - name: f
    buttons:
      - {label: Go, variant: raised}
`

	duplicateIDs := `forms:
  - name: f
    fields:
      - id: email
      - id: email
`

	builtinName := `themes:
  - name: Light
forms:
  - name: f
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cat *Catalog, err error)
	}{
		{
			name:     "valid catalog is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cat *Catalog, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cat.Theme)
				require.Len(t, cat.Themes, 1)
				require.Equal(t, "#0ea5e9", cat.Themes[0].Palette["primary"].Main)

				form, ok := cat.Form("signup")
				require.True(t, ok)
				require.Equal(t, "ocean", form.Theme)

				field, ok := form.Field("email")
				require.True(t, ok)
				require.NotNil(t, field.Value)
				require.Equal(t, "", *field.Value)
				require.Len(t, field.Validations, 1)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected with their line",
			contents: unknownKey,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 5, parseErr.Line)
				require.Contains(t, parseErr.Message, "lable")
			},
		},
		{
			name:     "missing forms returns validation error",
			contents: missingForms,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "forms", validationErr.Field)
			},
		},
		{
			name:     "palette colours must be hex",
			contents: badColour,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hexcolor")
			},
		},
		{
			name:     "button variants are checked",
			contents: badVariant,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "forms[0].buttons[0].variant", validationErr.Field)
			},
		},
		{
			name:     "control ids are unique within a form",
			contents: duplicateIDs,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "forms[0].fields[1].id", validationErr.Field)
			},
		},
		{
			name:     "custom themes cannot shadow built-ins",
			contents: builtinName,
			assert: func(t *testing.T, cat *Catalog, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "built-in")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempCatalog(t, tc.contents)
			cat, err := ParseCatalog(path)
			tc.assert(t, cat, err)
		})
	}
}

func TestParseCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil, "empty.yaml")
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), "catalog is empty")
}

func TestMalformedRulesAreNotCatalogErrors(t *testing.T) {
	t.Parallel()

	cat, err := Parse([]byte(`forms:
  - name: f
    fields:
      - id: code
        value: "abc"
        validations:
          - {type: pattern, value: "([", message: never shown}
          - {type: minLength, value: "six", message: never shown either}
          - {type: shout, message: unknown}
          - {type: maxLength, value: 2, message: Too long}
`), "inline")
	require.NoError(t, err)

	form, _ := cat.Form("f")
	field, _ := form.Field("code")
	message, failed := field.TextField().Error()
	require.True(t, failed)
	require.Equal(t, "Too long", message)
}

func TestHugeLengthLimitsStillApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"exponent", "1e20"},
		{"integer past int64", "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := Parse([]byte(`forms:
  - name: f
    fields:
      - id: code
        value: "abc"
        validations:
          - {type: minLength, value: `+tt.value+`, message: Too short}
`), "inline")
			require.NoError(t, err)

			form, _ := cat.Form("f")
			field, _ := form.Field("code")
			rules := field.Rules()
			require.Len(t, rules, 1)
			require.False(t, rules[0].Malformed())

			message, failed := field.TextField().Error()
			require.True(t, failed)
			require.Equal(t, "Too short", message)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat := Default()
	require.Equal(t, "light", cat.Theme)

	buttons, ok := cat.Form("buttons")
	require.True(t, ok)
	require.Len(t, buttons.Buttons, 9)

	fields, ok := cat.Form("fields")
	require.True(t, ok)
	email, ok := fields.Field("email")
	require.True(t, ok)

	message, failed := email.TextField().Error()
	require.True(t, failed)
	require.Equal(t, "Email is required", message)

	loaded, err := Load("")
	require.NoError(t, err)
	require.Equal(t, cat, loaded)
}

func writeTempCatalog(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
