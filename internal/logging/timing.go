package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// TimeWithResult executes the given function and logs its execution time,
// returning the function's result.
//
// Example:
//
//	items := logging.TimeWithResult("query", func() []query.Item {
//	    return engine.Query(ctx, term)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	duration := time.Since(start)

	Get().Debug(name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)

	return result
}

// Start begins a timing measurement for manual control.
// Must be paired with End() to log the duration.
//
// Example:
//
//	ctx := logging.Start("kubectl config current-context")
//	// ... run kubectl ...
//	logging.End(ctx)
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End completes a timing measurement started with Start() and logs the duration.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}

// EndWithCount completes a timing measurement and logs the duration with an item count.
//
// Example:
//
//	ctx := logging.Start("query")
//	items := engine.Query(ctx, term)
//	logging.EndWithCount(ctx, len(items))
func EndWithCount(ctx TimingContext, count int) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
		"count", count,
	)
}
