package logsink

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/internal/logger"
)

// TestChannel_String verifies the labels used in formatted lines.
func TestChannel_String(t *testing.T) {
	tests := []struct {
		ch   Channel
		want string
	}{
		{ChannelDebug, "DEBUG"},
		{ChannelInfo, "INFO"},
		{ChannelWarn, "WARN"},
		{ChannelError, "ERROR"},
		{ChannelAccess, "ACCESS"},
		{Channel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ch.String())
	}
}

// TestMessage_Line verifies the plain file form of a leveled message.
func TestMessage_Line(t *testing.T) {
	m := &Message{
		At:     at("2026-08-24 10:30:00"),
		Level:  ChannelWarn,
		Caller: "pkg/file.go:42",
		Text:   "something odd",
	}

	assert.Equal(t, "[2026-08-24 10:30:00] [WARN ] pkg/file.go:42 something odd", m.Line())
}

// TestDefaultLeveledConfig verifies one template per severity under dir.
func TestDefaultLeveledConfig(t *testing.T) {
	cfg := DefaultLeveledConfig("logs")

	assert.True(t, cfg.Console)
	assert.False(t, cfg.FileOut)
	require.Len(t, cfg.Templates, 4)
	assert.Equal(t, filepath.Join("logs", "info", "2006-01-02.log"), cfg.Templates[ChannelInfo])
	assert.Equal(t, filepath.Join("logs", "error", "2006-01-02.log"), cfg.Templates[ChannelError])
}

// TestLeveled_WritesToSeverityFiles verifies that each level lands in its own
// rotating file with the level label and message text.
func TestLeveled_WritesToSeverityFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultLeveledConfig(dir)
	cfg.Console = false
	cfg.FileOut = true

	l := NewLeveled(cfg, logger.Nop())
	l.Infof("count=%d", 7)
	l.Errorf("broken: %s", "pipe")
	l.Close()

	now := time.Now()

	infoLines := readLines(t, now.Format(cfg.Templates[ChannelInfo]))
	require.Len(t, infoLines, 1)
	assert.Contains(t, infoLines[0], "[INFO ]")
	assert.Contains(t, infoLines[0], "count=7")
	assert.Contains(t, infoLines[0], "leveled_test.go")

	errorLines := readLines(t, now.Format(cfg.Templates[ChannelError]))
	require.Len(t, errorLines, 1)
	assert.Contains(t, errorLines[0], "[ERROR]")
	assert.Contains(t, errorLines[0], "broken: pipe")
}
