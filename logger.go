package linekv

import (
	"log"
	"os"
)

// Logger lets embedders plug their own logging in. Implementations must
// tolerate arbitrary bytes in formatted arguments.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger writes to stderr. Debug output is dropped; wrap your own
// Logger via WithLogger if you want it.
type stdLogger struct {
	logger *log.Logger
}

func newStdLogger() *stdLogger {
	return &stdLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *stdLogger) Debugf(format string, args ...any) {}

func (l *stdLogger) Infof(format string, args ...any) {
	l.logger.Printf("INFO "+format, args...)
}

func (l *stdLogger) Errorf(format string, args ...any) {
	l.logger.Printf("ERROR "+format, args...)
}

// DiscardLogger drops everything. Use it for benchmarks.
type DiscardLogger struct{}

var _ Logger = DiscardLogger{}

func (DiscardLogger) Debugf(format string, args ...any) {}

func (DiscardLogger) Infof(format string, args ...any) {}

func (DiscardLogger) Errorf(format string, args ...any) {}
