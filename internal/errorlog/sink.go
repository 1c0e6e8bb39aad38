// Package errorlog appends failures to a plain text log in the user data directory
// and keeps the process alive when background work panics or fails.
package errorlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	FileName = "error.log"
	appName  = "ogura-an"
)

// DefaultDirectory returns the per-user data directory, or the working directory when the
// platform has none.
func DefaultDirectory() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}

// Sink appends lines of the form "[<timestamp>] <kind>: <message>".
// It is safe for concurrent use and never reports its own failures to the caller.
type Sink struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// NewSink writes to error.log under directory, or DefaultDirectory when directory is empty.
func NewSink(directory string) *Sink {
	if directory == "" {
		directory = DefaultDirectory()
	}
	return &Sink{
		path: filepath.Join(directory, FileName),
		now:  time.Now,
	}
}

func (s *Sink) Path() string {
	return s.path
}

// LogError appends one line. A message spanning several lines is escaped onto one.
func (s *Sink) LogError(kind, message string) {
	if s == nil {
		return
	}

	line := fmt.Sprintf("[%s] %s: %s\n",
		s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		kind,
		escapeNewlines(message),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.appendLine(line); err != nil {
		slog.Default().Debug("failed to write the error log",
			"path", s.path,
			"kind", kind,
			"error", err)
	}
}

// appendLine issues a single write on an O_APPEND file so concurrent processes do not
// interleave within a line.
func (s *Sink) appendLine(line string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("file.WriteString > %w", err)
	}
	return nil
}

// ReportFailure logs reason of any type. It is the single entry point for the supervisor
// and for errors the UI reports.
func (s *Sink) ReportFailure(kind string, reason any) {
	message := Stringify(reason)
	slog.Default().Error("failure reported", "kind", kind, "reason", message)
	s.LogError(kind, message)
}

// Stringify renders strings as is, errors by their message and anything else as JSON.
func Stringify(reason any) string {
	switch r := reason.(type) {
	case string:
		return r
	case error:
		return errorMessage(r)
	}

	encoded, err := json.Marshal(reason)
	if err != nil {
		return fmt.Sprintf("%v", reason)
	}
	return string(encoded)
}

// errorMessage falls back to fmt when Error panics, as it does on some typed nil pointers.
func errorMessage(err error) (message string) {
	defer func() {
		if r := recover(); r != nil {
			message = fmt.Sprintf("%v", err)
		}
	}()
	return err.Error()
}

var newlineReplacer = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func escapeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
