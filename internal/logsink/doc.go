// Package logsink implements the asynchronous, rotating, multi-channel log
// writer behind gatekit's leveled logger and access logger.
//
// A Sink accepts records through a non-blocking Emit and hands them to a
// single dedicated consumer goroutine over an unbounded FIFO queue. The
// consumer is the only writer to the console and to the rotating file set,
// which makes day rotation and file appends safe without any file-level
// locking. Emission has no backpressure: under sustained overload the queue
// grows without bound, an accepted trade-off for never stalling the request
// path on telemetry.
//
// Two independent Sink instances exist in a typical deployment: one behind
// the process-wide Leveled logger (one file per severity) and one behind the
// access-log middleware (a single access file). They share the consumer and
// rotation machinery but are configured and closed independently.
package logsink
