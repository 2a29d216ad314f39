package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "dark", "form": "signup"})
	log.Info("rendering catalog")

	entry := decode(t, buf)
	require.Equal(t, "rendering catalog", entry["message"])
	require.Equal(t, "dark", entry["theme"])
	require.Equal(t, "signup", entry["form"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("catalog").Error(errors.New("boom"), "failed")

	entry := decode(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "catalog", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)

	level, err := ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.Component("x"))
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("ignored"), "ignored")
		Nop().Warn("ignored")
	})
}
