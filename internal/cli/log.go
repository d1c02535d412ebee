package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// progress measures an operation and reports its elapsed time on completion.
// Create one per operation; it is not safe for concurrent done calls.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing from now. Call done when the operation finishes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond.
// Example output: "Analyzed 3 group(s) (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is a private context key type so entries cannot collide with
// values set by other packages.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context for retrieval by subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// when none was attached, so callers always get a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
