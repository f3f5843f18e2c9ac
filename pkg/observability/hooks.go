// Package observability provides hooks for metrics and logging.
//
// The graph and the loader stay unaware of loggers and metric backends. They
// emit events through the hook interfaces below, and the application registers
// implementations at startup: the CLI installs a logging observer, the HTTP
// server installs Prometheus collectors.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnFeedStart(ctx, observability.FeedStreets, path)
//	// ... read records ...
//	observability.Build().OnFeedComplete(ctx, observability.FeedStreets, path, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Feed names passed to BuildHooks.
const (
	FeedRegions = "regions"
	FeedStreets = "streets"
)

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events while a graph is constructed from its feeds.
type BuildHooks interface {
	// OnFeedStart is called before the first record of a feed is applied.
	OnFeedStart(ctx context.Context, feed, source string)

	// OnRecordSkipped is called for records the loader filters out, such as
	// blank neighborhood names.
	OnRecordSkipped(ctx context.Context, feed string, row int, reason string)

	// OnFeedComplete is called after the last record of a feed, or on failure.
	OnFeedComplete(ctx context.Context, feed, source string, records int, duration time.Duration, err error)

	// OnBuildComplete is called once both feeds have been applied.
	OnBuildComplete(ctx context.Context, vertices, edges int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the read-only HTTP API.
type HTTPHooks interface {
	// OnResponse records a served request. Route is the matched pattern, not
	// the raw path, so neighborhood names do not explode label cardinality.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnFeedStart(context.Context, string, string)                               {}
func (NoopBuildHooks) OnRecordSkipped(context.Context, string, int, string)                      {}
func (NoopBuildHooks) OnFeedComplete(context.Context, string, string, int, time.Duration, error) {}
func (NoopBuildHooks) OnBuildComplete(context.Context, int, int, time.Duration, error)           {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// MultiBuildHooks forwards every event to each of its members in order.
type MultiBuildHooks []BuildHooks

func (m MultiBuildHooks) OnFeedStart(ctx context.Context, feed, source string) {
	for _, h := range m {
		h.OnFeedStart(ctx, feed, source)
	}
}

func (m MultiBuildHooks) OnRecordSkipped(ctx context.Context, feed string, row int, reason string) {
	for _, h := range m {
		h.OnRecordSkipped(ctx, feed, row, reason)
	}
}

func (m MultiBuildHooks) OnFeedComplete(ctx context.Context, feed, source string, records int, d time.Duration, err error) {
	for _, h := range m {
		h.OnFeedComplete(ctx, feed, source, records, d, err)
	}
}

func (m MultiBuildHooks) OnBuildComplete(ctx context.Context, vertices, edges int, d time.Duration, err error) {
	for _, h := range m {
		h.OnBuildComplete(ctx, vertices, edges, d, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any feed is loaded.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	httpHooks = NoopHTTPHooks{}
}
