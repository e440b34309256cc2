package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DEBUG},
		{" ERROR ", ERROR},
		{"info", INFO},
		{"", INFO},
		{"verbose", INFO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ERROR")

	l.Printf("hidden info %d", 1)
	l.Debugf("hidden debug")
	assert.Empty(t, buf.String())

	l.Errorf("visible error: status=%d", 500)
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "visible error: status=500")
}

func TestLoggerDebugWritesAllLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug")

	l.Debug("d")
	l.Println("i")
	l.Error("e")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "ERROR")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.Equal(t, ERROR, l.Level())
	l.Errorf("nowhere")
}
