package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/arthur-debert/commhealth/pkg/ui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"Terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{" json ", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

type fakeEnv map[string]string

func (e fakeEnv) Environ() []string {
	out := make([]string, 0, len(e))
	for k, v := range e {
		out = append(out, k+"="+v)
	}
	return out
}

func (e fakeEnv) Getenv(key string) string { return e[key] }

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		env  fakeEnv
		want ui.Format
	}{
		{"color terminal", true, fakeEnv{"TERM": "xterm-256color"}, ui.FormatTerminal},
		{"no color", true, fakeEnv{"TERM": "xterm-256color", "NO_COLOR": "1"}, ui.FormatText},
		{"clicolor off", true, fakeEnv{"TERM": "xterm-256color", "CLICOLOR": "0"}, ui.FormatText},
		{"dumb terminal", true, fakeEnv{"TERM": "dumb"}, ui.FormatText},
		{"pipe", false, fakeEnv{"TERM": "xterm-256color"}, ui.FormatText},
		{"forced color on pipe", false, fakeEnv{"CLICOLOR_FORCE": "1"}, ui.FormatTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ui.DetectFormat(&bytes.Buffer{}, termenv.WithTTY(tt.tty), termenv.WithEnvironment(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f, termenv.WithEnvironment(fakeEnv{})))
}
