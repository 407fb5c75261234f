package logsink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecord is a minimal Record for queue and sink tests.
type testRecord struct {
	at   time.Time
	ch   Channel
	text string
}

func (r *testRecord) Time() time.Time  { return r.at }
func (r *testRecord) Channel() Channel { return r.ch }
func (r *testRecord) Console() string  { return r.text }
func (r *testRecord) Line() string     { return r.text }

func rec(text string) *testRecord {
	return &testRecord{at: time.Now(), ch: ChannelInfo, text: text}
}

// TestQueue_FIFO verifies strict enqueue-order delivery.
func TestQueue_FIFO(t *testing.T) {
	q := newQueue()

	require.NoError(t, q.push(rec("first")))
	require.NoError(t, q.push(rec("second")))
	require.NoError(t, q.push(rec("third")))

	for _, want := range []string{"first", "second", "third"} {
		got, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, want, got.Line())
	}
}

// TestQueue_PushAfterClose verifies that a closed queue refuses new records.
func TestQueue_PushAfterClose(t *testing.T) {
	q := newQueue()
	q.close()

	assert.ErrorIs(t, q.push(rec("late")), errQueueClosed)
}

// TestQueue_DrainsAfterClose verifies that records enqueued before close are
// still delivered, and that pop reports exhaustion afterwards.
func TestQueue_DrainsAfterClose(t *testing.T) {
	q := newQueue()
	require.NoError(t, q.push(rec("queued")))
	q.close()

	got, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, "queued", got.Line())

	_, ok = q.pop()
	assert.False(t, ok)
}

// TestQueue_PopWakesOnPush verifies that a blocked pop wakes when a record
// arrives from another goroutine.
func TestQueue_PopWakesOnPush(t *testing.T) {
	q := newQueue()

	done := make(chan string, 1)
	go func() {
		r, ok := q.pop()
		if !ok {
			done <- ""
			return
		}
		done <- r.Line()
	}()

	require.NoError(t, q.push(rec("wakeup")))

	select {
	case got := <-done:
		assert.Equal(t, "wakeup", got)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not wake up")
	}
}

// TestQueue_PopWakesOnClose verifies that a blocked pop returns when the
// queue is closed empty.
func TestQueue_PopWakesOnClose(t *testing.T) {
	q := newQueue()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		done <- ok
	}()

	q.close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("pop did not wake up on close")
	}
}
