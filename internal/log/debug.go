// Package log provides the classsweep debug log. Messages are held in memory
// until a destination is chosen with SetFile, and dropped for good when no
// destination is configured.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// sink buffers debug output until a file is attached.
type sink struct {
	mu      sync.Mutex
	w       io.WriteCloser
	pending []byte
	discard bool
}

var (
	debugSink = &sink{}
	stdLogger = log.New(debugSink, "classsweep: ", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.discard:
		return len(p), nil
	case s.w != nil:
		return s.w.Write(p)
	}

	// p may be reused by the caller.
	s.pending = append(s.pending, p...)
	return len(p), nil
}

func (s *sink) closeLocked() error {
	if s.w == nil {
		return nil
	}
	err := s.w.Close()
	s.w = nil
	return err
}

// SetFile attaches the debug log to path, flushing anything logged so far.
// An empty path, or a path that cannot be opened, discards buffered and
// future messages.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	_ = debugSink.closeLocked()

	if path == "" {
		debugSink.discard = true
		debugSink.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.pending = nil
		return err
	}

	debugSink.w = f
	debugSink.discard = false
	if len(debugSink.pending) > 0 {
		_, _ = f.Write(debugSink.pending)
		debugSink.pending = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()
	return debugSink.closeLocked()
}
