package ports

import (
	"context"
	"time"

	"go.trai.ch/pkgraph/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// LoadObserver receives load cycle measurements.
type LoadObserver interface {
	// LoaderFinished is called after each loader's Load returns.
	LoaderFinished(source string, packages int, elapsed time.Duration, err error)
	// LoadFinished is called once per load cycle, successful or not.
	LoadFinished(stats domain.Stats, elapsed time.Duration, err error)
}
