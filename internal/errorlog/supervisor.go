package errorlog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

const (
	KindUncaughtException  = "uncaughtException"
	KindUnhandledRejection = "unhandledRejection"
)

// Reporter receives failures from the supervisor.
type Reporter interface {
	ReportFailure(kind string, reason any)
}

// Supervisor turns panics and failed background work into error log entries.
// It never terminates or restarts the process.
type Supervisor struct {
	reporter Reporter
	wg       sync.WaitGroup
}

func NewSupervisor(reporter Reporter) *Supervisor {
	return &Supervisor{reporter: reporter}
}

// Recover must be deferred directly: defer supervisor.Recover().
func (s *Supervisor) Recover() {
	if r := recover(); r != nil {
		s.ReportPanic(r)
	}
}

// ReportPanic logs a value recovered by the caller.
func (s *Supervisor) ReportPanic(r any) {
	slog.Default().Error("recovered from panic",
		"reason", r,
		"stack_trace", string(debug.Stack()))

	reason := r
	if _, ok := r.(error); !ok {
		if _, ok := r.(string); !ok {
			reason = fmt.Sprintf("%v", r)
		}
	}
	s.reporter.ReportFailure(KindUncaughtException, reason)
}

// Go runs fn in the background. A returned error is reported as an unhandled rejection
// and a panic as an uncaught exception.
func (s *Supervisor) Go(ctx context.Context, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.Recover()

		if err := fn(ctx); err != nil {
			s.reporter.ReportFailure(KindUnhandledRejection, err)
		}
	}()
}

// Wait blocks until every function started with Go has returned.
func (s *Supervisor) Wait() {
	s.wg.Wait()
}
