package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects output for the duration of a test.
func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestVerboseLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] rule table fired\n"},
		{"info", Info, "[INFO] rule table fired\n"},
		{"warn", Warn, "[WARN] rule table fired\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("rule %s fired", "table")
			assert.Equal(t, tt.want, buf.String())
		})

		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log("rule %s fired", "table")
			assert.Zero(t, buf.Len())
		})
	}
}

func TestError_AlwaysWritten(t *testing.T) {
	buf := capture(t, false)
	Error("save %s: %v", "doc", "disk full")
	assert.Equal(t, "[ERROR] save doc: disk full\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)
	Section("Paste")
	assert.Equal(t, "\n=== Paste ===\n", buf.String())

	quiet := capture(t, false)
	Section("Paste")
	assert.Zero(t, quiet.Len())
}
