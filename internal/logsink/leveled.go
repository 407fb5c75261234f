package logsink

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gatekit/gatekit/internal/logger"
)

const timeLayout = "2006-01-02 15:04:05"

// Message is a free-form leveled log record: severity, formatted text, the
// call site that produced it, and a timestamp.
type Message struct {
	At     time.Time
	Level  Channel
	Caller string
	Text   string
}

// Time implements Record.
func (m *Message) Time() time.Time { return m.At }

// Channel implements Record.
func (m *Message) Channel() Channel { return m.Level }

// Console implements Record.
func (m *Message) Console() string {
	return fmt.Sprintf("%s %s %s %s",
		timestampStyle.Render("["+m.At.Format(timeLayout)+"]"),
		levelStyle(m.Level).Render(fmt.Sprintf("[%-5s]", m.Level)),
		callerStyle.Render(m.Caller),
		m.Text,
	)
}

// Line implements Record.
func (m *Message) Line() string {
	return fmt.Sprintf("[%s] [%-5s] %s %s", m.At.Format(timeLayout), m.Level, m.Caller, m.Text)
}

// Leveled is a severity-split logger over a Sink: each level writes through
// the shared consumer to its own rotating file. A process typically owns one
// Leveled instance created at startup and passes it by reference.
type Leveled struct {
	sink *Sink
}

// DefaultLeveledConfig returns the stock configuration: console output on,
// file output off, one file template per severity under dir (for example
// "logs").
func DefaultLeveledConfig(dir string) Config {
	return Config{
		Console: true,
		Templates: map[Channel]string{
			ChannelDebug: filepath.Join(dir, "debug", "2006-01-02.log"),
			ChannelInfo:  filepath.Join(dir, "info", "2006-01-02.log"),
			ChannelWarn:  filepath.Join(dir, "warn", "2006-01-02.log"),
			ChannelError: filepath.Join(dir, "error", "2006-01-02.log"),
		},
	}
}

// NewLeveled constructs a Leveled logger with its own Sink. diag receives
// the sink's fatal start-up failures.
func NewLeveled(cfg Config, diag *logger.Logger) *Leveled {
	return &Leveled{sink: New(cfg, diag)}
}

// Configure replaces the underlying sink's configuration; see Sink.Configure
// for the cutover semantics.
func (l *Leveled) Configure(cfg Config) { l.sink.Configure(cfg) }

// Close drains and stops the underlying sink.
func (l *Leveled) Close() { l.sink.Close() }

// Debugf logs a formatted message at debug level.
func (l *Leveled) Debugf(format string, args ...any) {
	l.emit(ChannelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at info level.
func (l *Leveled) Infof(format string, args ...any) {
	l.emit(ChannelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at warn level.
func (l *Leveled) Warnf(format string, args ...any) {
	l.emit(ChannelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level.
func (l *Leveled) Errorf(format string, args ...any) {
	l.emit(ChannelError, fmt.Sprintf(format, args...))
}

func (l *Leveled) emit(ch Channel, text string) {
	l.sink.Emit(&Message{
		At:     time.Now(),
		Level:  ch,
		Caller: callSite(3),
		Text:   text,
	})
}

// callSite returns the "file.go:line" of the frame skip levels up the stack,
// trimmed to the final two path segments for readable lines.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???"
	}

	short := file
	if dir := filepath.Dir(file); dir != "." {
		short = filepath.Join(filepath.Base(dir), filepath.Base(file))
	}

	return fmt.Sprintf("%s:%d", short, line)
}
