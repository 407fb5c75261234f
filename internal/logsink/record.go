package logsink

import "time"

// Channel identifies the rotating file a record is appended to when file
// output is enabled. The four severity channels are used by the Leveled
// logger; ChannelAccess is used by access records.
type Channel int

const (
	ChannelDebug Channel = iota
	ChannelInfo
	ChannelWarn
	ChannelError
	ChannelAccess
)

// String returns the upper-case label of the channel as it appears in
// formatted log lines.
func (c Channel) String() string {
	switch c {
	case ChannelDebug:
		return "DEBUG"
	case ChannelInfo:
		return "INFO"
	case ChannelWarn:
		return "WARN"
	case ChannelError:
		return "ERROR"
	case ChannelAccess:
		return "ACCESS"
	default:
		return "UNKNOWN"
	}
}

// Record is one unit of log output. Records are created per log call or per
// request, consumed exactly once by the sink's consumer, and never mutated
// after creation.
type Record interface {
	// Time is the instant the record describes. Rotation compares its local
	// calendar date against the date of the currently open file set.
	Time() time.Time

	// Channel selects which file the record is appended to.
	Channel() Channel

	// Console renders the colorized single-line form for terminal output.
	Console() string

	// Line renders the plain single-line form for file output, without a
	// trailing newline.
	Line() string
}
