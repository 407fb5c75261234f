package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// fileSet holds the open file handles for one calendar day, one per channel
// that has a template. It is owned exclusively by the consumer goroutine and
// replaced atomically when the day changes.
type fileSet struct {
	day   time.Time
	files map[Channel]*os.File
}

// openFileSet resolves every template against day's local date and opens the
// resulting paths in create-if-absent append mode, creating parent
// directories as needed.
func openFileSet(templates map[Channel]string, day time.Time) (*fileSet, error) {
	fs := &fileSet{
		day:   day,
		files: make(map[Channel]*os.File, len(templates)),
	}

	for ch, tpl := range templates {
		f, err := createLogFile(day.Format(tpl))
		if err != nil {
			fs.close()
			return nil, err
		}
		fs.files[ch] = f
	}

	return fs, nil
}

// append writes rec as one newline-terminated line to the file matching its
// channel. Records for channels without a template are silently skipped.
func (fs *fileSet) append(rec Record) error {
	f, ok := fs.files[rec.Channel()]
	if !ok {
		return nil
	}

	_, err := fmt.Fprintln(f, rec.Line())

	return err
}

func (fs *fileSet) close() {
	for _, f := range fs.files {
		_ = f.Close()
	}
}

// createLogFile opens path for appending, creating it and its parent
// directories when absent.
func createLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	return f, nil
}

// localDay truncates t to its local calendar date.
func localDay(t time.Time) time.Time {
	year, month, day := t.Local().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
