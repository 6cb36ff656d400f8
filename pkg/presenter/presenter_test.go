package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestNewWithOptions(t *testing.T) {
	var output, errorOutput bytes.Buffer
	presenter := NewWithOptions(&output, &errorOutput, ColorNever)

	assert.Equal(t, &output, presenter.output)
	assert.Equal(t, &errorOutput, presenter.errorOutput)
	assert.Equal(t, ColorNever, presenter.colorMode)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name            string
		noColor         string
		skillforgeColor string
		expected        ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLFORGE_COLOR always", "", "always", ColorAlways},
		{"SKILLFORGE_COLOR force", "", "force", ColorAlways},
		{"SKILLFORGE_COLOR never", "", "never", ColorNever},
		{"SKILLFORGE_COLOR off", "", "off", ColorNever},
		{"SKILLFORGE_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid color value", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLFORGE_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillforgeColor != "" {
				os.Setenv("SKILLFORGE_COLOR", tt.skillforgeColor)
			}

			result := detectColorMode()
			assert.Equal(t, tt.expected, result)

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLFORGE_COLOR")
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	err := errors.New("test error")
	presenter.Error(err, "test context")

	output := errorOutput.String()
	assert.Contains(t, output, "[ERROR]")
	assert.Contains(t, output, "test context")
	assert.Contains(t, output, "test error")

	errorOutput.Reset()
	presenter.Error(err, "")

	output = errorOutput.String()
	assert.Contains(t, output, "[ERROR]")
	assert.Contains(t, output, "test error")
	assert.NotContains(t, output, "test context")

	errorOutput.Reset()
	presenter.Error(nil, "context")
	assert.Empty(t, errorOutput.String())
}

func TestSuccess(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("Operation completed")

	result := output.String()
	assert.Contains(t, result, "✓")
	assert.Contains(t, result, "Operation completed")
}

func TestSuccessQuietMode(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)
	presenter.SetQuiet(true)

	presenter.Success("Operation completed")

	assert.Empty(t, output.String())
}

func TestWarning(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Warning("This is a warning")

	result := output.String()
	assert.Contains(t, result, "⚠")
	assert.Contains(t, result, "This is a warning")
}

func TestInfo(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Info("Information message")

	result := output.String()
	assert.Contains(t, result, "Information message")
	assert.NotContains(t, result, "[INFO]") // Info doesn't have prefix
}

func TestInfoQuietMode(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)
	presenter.SetQuiet(true)

	presenter.Info("Information message")

	assert.Empty(t, output.String())
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Section("Test Section")

	result := output.String()
	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Test Section", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Test Section")), lines[1])
}

func TestSeparator(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Separator()

	assert.Contains(t, output.String(), strings.Repeat("-", 60))
}

func TestQuietModeToggle(t *testing.T) {
	presenter := NewWithOptions(nil, nil, ColorNever)

	assert.False(t, presenter.IsQuiet())
	presenter.SetQuiet(true)
	assert.True(t, presenter.IsQuiet())
	presenter.SetQuiet(false)
	assert.False(t, presenter.IsQuiet())
}
