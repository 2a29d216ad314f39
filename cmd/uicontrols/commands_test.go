package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated settings file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const signupCatalog = `theme: dark
themes:
  - name: ocean
    base: dark
    palette:
      primary: {main: "#0ea5e9"}
forms:
  - name: signup
    title: Create account
    fields:
      - id: password
        label: Password
        type: password
        validations:
          - {type: required, message: Password is required}
          - {type: minLength, value: 6, message: Must be at least 6 characters}
    buttons:
      - {label: Submit}
`

func TestRenderCommandPrintsBuiltinCatalog(t *testing.T) {
	output, err := execute(t, "render", "--width", "70")
	require.NoError(t, err)

	require.Contains(t, output, "UIControls Demo")
	require.Contains(t, output, "Full Width Info")
	require.Contains(t, output, "Email is required")
	for _, line := range bytes.Split([]byte(output), []byte("\n")) {
		require.LessOrEqual(t, lipgloss.Width(string(line)), 70)
	}
}

func TestRenderCommandUsesCatalogFile(t *testing.T) {
	path := writeFile(t, "catalog.yaml", signupCatalog)

	output, err := execute(t, "render", "--catalog", path, "--theme", "ocean", "--width", "60")
	require.NoError(t, err)
	require.Contains(t, output, "Create account")
	require.Contains(t, output, "Submit")
}

func TestRenderCommandReportsBrokenCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "forms: [\n")

	_, err := execute(t, "render", "--catalog", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load catalog")
}

func TestValidateCommand(t *testing.T) {
	path := writeFile(t, "catalog.yaml", signupCatalog)

	output, err := execute(t, "validate", "--catalog", path, "--form", "signup", "--field", "password", "abc")
	require.Error(t, err)
	require.Contains(t, output, "Must be at least 6 characters")

	output, err = execute(t, "validate", "--catalog", path, "--form", "signup", "--field", "password", "")
	require.Error(t, err)
	require.Contains(t, output, "Password is required")

	output, err = execute(t, "validate", "--catalog", path, "--form", "signup", "--field", "password", "secret1")
	require.NoError(t, err)
	require.Equal(t, "valid\n", output)
}

func TestValidateCommandBuiltinCatalog(t *testing.T) {
	output, err := execute(t, "validate", "--form", "fields", "--field", "email", "me@example.com")
	require.NoError(t, err)
	require.Equal(t, "valid\n", output)

	output, err = execute(t, "validate", "--form", "fields", "--field", "age", "4x")
	require.Error(t, err)
	require.Contains(t, output, "Only numbers allowed")
}

func TestValidateCommandUnknownField(t *testing.T) {
	_, err := execute(t, "validate", "--form", "fields", "--field", "nope", "x")
	require.ErrorContains(t, err, `field "nope" not found`)

	_, err = execute(t, "validate", "--form", "missing", "--field", "email", "x")
	require.ErrorContains(t, err, `form "missing" not found`)
}

func TestThemesCommand(t *testing.T) {
	output, err := execute(t, "themes")
	require.NoError(t, err)
	require.Contains(t, output, "dark")
	require.Contains(t, output, "light")

	path := writeFile(t, "catalog.yaml", signupCatalog)
	output, err = execute(t, "themes", "--catalog", path, "ocean")
	require.NoError(t, err)
	require.Contains(t, output, "name: ocean")
	require.Contains(t, output, "main=#0ea5e9")
	require.Contains(t, output, "sm: 8px 16px")

	_, err = execute(t, "themes", "sepia")
	require.ErrorContains(t, err, `unknown theme "sepia"`)
}

func TestSettingsSupplyDefaults(t *testing.T) {
	catalogPath := writeFile(t, "catalog.yaml", signupCatalog)
	configPath := writeFile(t, "config.yaml", "theme_name: ocean\ncatalog_path: "+catalogPath+"\n")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", configPath, "validate", "--form", "signup", "--field", "password", "longenough"})

	require.NoError(t, root.Execute())
	require.Equal(t, "valid\n", buf.String())
}

func TestVerboseFlagEnablesDebugLogging(t *testing.T) {
	root := newRootCmd()
	logs := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(logs)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "--verbose", "themes"})

	require.NoError(t, root.Execute())
	require.Contains(t, logs.String(), "loading catalog")
}
