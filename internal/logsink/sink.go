package logsink

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gatekit/gatekit/internal/logger"
)

// Config controls where a Sink writes and which file each channel rotates
// through. It is supplied at construction and may be replaced wholesale with
// Configure, which swaps in a fresh consumer.
type Config struct {
	// Console enables immediate formatted output to stdout.
	Console bool

	// FileOut enables append-only file output with calendar-day rotation.
	FileOut bool

	// Templates maps each channel to its file path template. Templates use
	// the Go reference-time layout for the date part, e.g.
	// "logs/info/2006-01-02.log"; the record's local date is substituted at
	// rotation time. Channels without a template produce no file output.
	Templates map[Channel]string
}

// Sink is an asynchronous log writer: Emit enqueues a record onto an
// unbounded FIFO queue and returns immediately; a single consumer goroutine
// owns all console and file writes.
type Sink struct {
	mu   sync.Mutex
	cur  *consumer
	diag *logger.Logger
}

// consumer pairs a queue with the goroutine draining it. done is closed when
// the goroutine has drained its queue and released its files.
type consumer struct {
	q    *queue
	done chan struct{}
}

// New constructs a Sink and starts its consumer. When cfg enables file
// output, the initial file set is opened before the consumer starts; an open
// failure at this point is fatal, because the consumer cannot proceed
// without its files.
func New(cfg Config, diag *logger.Logger) *Sink {
	s := &Sink{diag: diag}
	s.cur = s.startConsumer(cfg)

	return s
}

// Emit enqueues rec for the current consumer and returns immediately.
// If the consumer has already been shut down, the failure is reported to
// stderr and the record is dropped; it is never surfaced to the caller.
func (s *Sink) Emit(rec Record) {
	s.mu.Lock()
	q := s.cur.q
	s.mu.Unlock()

	if err := q.push(rec); err != nil {
		fmt.Fprintf(os.Stderr, "logsink: record dropped: %v\n", err)
	}
}

// Configure replaces the sink's entire queue/consumer pair with one built
// from cfg. Records already enqueued on the old queue still drain, because
// the old consumer keeps running until its queue is closed, which happens
// here without waiting. There is no strict cutover ordering between records
// emitted around a reconfiguration.
func (s *Sink) Configure(cfg Config) {
	next := s.startConsumer(cfg)

	s.mu.Lock()
	old := s.cur
	s.cur = next
	s.mu.Unlock()

	old.q.close()
}

// Close shuts the sink down: the queue stops accepting records, the consumer
// drains what is already enqueued, closes its files, and exits. Close blocks
// until the drain completes.
func (s *Sink) Close() {
	s.mu.Lock()
	cur := s.cur
	s.mu.Unlock()

	cur.q.close()
	<-cur.done
}

func (s *Sink) startConsumer(cfg Config) *consumer {
	var files *fileSet
	if cfg.FileOut {
		fs, err := openFileSet(cfg.Templates, localDay(time.Now()))
		if err != nil {
			s.diag.Fatal().Err(err).Msg("cannot open log files")
		}
		files = fs
	}

	c := &consumer{q: newQueue(), done: make(chan struct{})}
	go s.consume(c, cfg, files)

	return c
}

// consume is the single writer: it processes records strictly in enqueue
// order, printing to the console first and then appending to the file
// matching the record's channel, rotating the file set when the record's
// calendar date differs from the open set's date.
func (s *Sink) consume(c *consumer, cfg Config, files *fileSet) {
	defer close(c.done)

	for {
		rec, ok := c.q.pop()
		if !ok {
			if files != nil {
				files.close()
			}
			return
		}

		if cfg.Console {
			fmt.Println(rec.Console())
		}

		if files == nil {
			continue
		}

		day := localDay(rec.Time())
		if !day.Equal(files.day) {
			files.close()
			next, err := openFileSet(cfg.Templates, day)
			if err != nil {
				s.diag.Fatal().Err(err).Msg("cannot rotate log files")
			}
			files = next
		}

		if err := files.append(rec); err != nil {
			fmt.Fprintf(os.Stderr, "logsink: write failed: %v\n", err)
		}
	}
}
