package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgraph/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// DisabledEnv is the standard OpenTelemetry switch turning the SDK off.
const DisabledEnv = "OTEL_SDK_DISABLED"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewTracer(), nil
		},
	})
}

// NewTracer returns a NoOpTracer when DisabledEnv is "true" and an OTelTracer on the global
// provider otherwise.
func NewTracer() ports.Tracer {
	if strings.EqualFold(os.Getenv(DisabledEnv), "true") {
		return NewNoOpTracer()
	}
	return NewOTelTracer(InstrumentationName)
}
