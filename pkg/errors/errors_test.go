package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: catalog.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("catalog.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: catalog.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("forms[0].fields[1].type", "must be one of text email password number", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "forms[0].fields[1].type", validationErr.Field)
	require.Contains(t, err.Error(), "must be one of")
}

func TestConfigErrorMessages(t *testing.T) {
	t.Parallel()

	require.Equal(t, "theme configuration error [ocean] palette.info: role is not defined",
		NewConfigError("ocean", "palette.info", "role is not defined").Error())
	require.Equal(t, "theme configuration error: palette.info: role is not defined",
		NewConfigError("", "palette.info", "role is not defined").Error())
	require.Equal(t, "theme configuration error: empty name",
		NewConfigError("", "", "empty name").Error())

	var nilErr *ConfigError
	require.Empty(t, nilErr.Error())
}
