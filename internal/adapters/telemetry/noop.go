// Package telemetry provides telemetry implementations for build progress.
package telemetry

import (
	"context"

	"go.trai.ch/moji/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write does nothing and returns the length of p.
func (v *NoOpVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}
