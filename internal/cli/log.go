package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/citymesh/citygraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Graph(vertices=94, edges=1218) (41ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Build Observer
// =============================================================================

// logHooks reports loader events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

var _ observability.BuildHooks = logHooks{}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnFeedStart(_ context.Context, feed, source string) {
	h.logger.Debug("Reading feed", "feed", feed, "source", source)
}

func (h logHooks) OnRecordSkipped(_ context.Context, feed string, row int, reason string) {
	h.logger.Debug("Skipped record", "feed", feed, "row", row, "reason", reason)
}

func (h logHooks) OnFeedComplete(_ context.Context, feed, _ string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Feed failed", "feed", feed, "records", records, "err", err)
		return
	}
	h.logger.Debug("Feed applied", "feed", feed, "records", records, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnBuildComplete(_ context.Context, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Build failed", "err", err)
		return
	}
	h.logger.Debug("Graph built", "vertices", vertices, "edges", edges, "duration", d.Round(time.Microsecond))
}
