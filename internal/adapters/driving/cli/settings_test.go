package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commandNames := make([]string, 0, len(settingsCmd.Commands()))
	for _, cmd := range settingsCmd.Commands() {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
}

func TestSettingsShowCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Short line threshold: 80")
	assert.Contains(t, out, "Allowed tags:         (built-in)")
	assert.Contains(t, out, "Convert HTML:         false")
	assert.Contains(t, out, "Backend:              sqlite")
	assert.Contains(t, out, "Minimum interval:     250ms")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Classifier:")
}

func TestSettingsSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("", "settings", "set", domain.KeyShortLineThreshold, "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Set classifier.short_line_threshold = 40")

	_, err = executeCommand("", "settings", "set", domain.KeyAllowedTags, "Div, span")
	require.NoError(t, err)

	out, err = executeCommand("", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Short line threshold: 40")
	assert.Contains(t, out, "Allowed tags:         div, span")
}

func TestSettingsSetCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := [][]string{
		{domain.KeyShortLineThreshold, "zero"},
		{domain.KeyStorageBackend, "postgres"},
		{"unknown.key", "x"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand("", "settings", "set", args[0], args[1])
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCommands_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand("", "settings", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")

	_, err = executeCommand("", "settings", "set", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
