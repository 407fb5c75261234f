package logsink

import (
	"fmt"
	"time"
)

// AccessRecord is the structured per-request record emitted by the access
// logger middleware after the inner service completes.
type AccessRecord struct {
	// Tag is the short label prefixed to every access line, e.g. "[GATE]".
	Tag string

	// Begin and End bracket the request's traversal of the inner service.
	Begin time.Time
	End   time.Time

	// Status is the status code of the outbound response.
	Status int

	// IP is the peer address of the caller.
	IP string

	// Method and Path identify the request.
	Method string
	Path   string

	// Extra is a free-form suffix appended to the line.
	Extra string
}

// Time implements Record. Rotation follows the request's begin time.
func (r *AccessRecord) Time() time.Time { return r.Begin }

// Channel implements Record.
func (r *AccessRecord) Channel() Channel { return ChannelAccess }

// Console implements Record.
func (r *AccessRecord) Console() string {
	return fmt.Sprintf("%s %s |%s| %6s | %15s |%s %s %s",
		timestampStyle.Render("["+r.Begin.Format(timeLayout)+"]"),
		tagStyle.Render(r.Tag),
		colorStatus(r.Status),
		r.elapsed(),
		peerStyle.Render(r.IP),
		colorMethod(r.Method),
		r.Path,
		r.Extra,
	)
}

// Line implements Record.
func (r *AccessRecord) Line() string {
	return fmt.Sprintf("[%s] %s | %d | %6s | %15s | %-6s %s %s",
		r.Begin.Format(timeLayout), r.Tag, r.Status, r.elapsed(), r.IP, r.Method, r.Path, r.Extra)
}

func (r *AccessRecord) elapsed() string {
	return fmt.Sprintf("%dms", r.End.Sub(r.Begin).Milliseconds())
}
