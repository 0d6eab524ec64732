package telemetry

import (
	"context"

	"go.trai.ch/depsync/internal/core/ports"
)

var _ ports.Tracer = Noop{}

// Noop is a tracer that records nothing.
type Noop struct{}

// Start returns ctx unchanged and a span that ignores every call.
func (Noop) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// EmitPlan does nothing.
func (Noop) EmitPlan(context.Context, []string) {}

type noopSpan struct{}

func (noopSpan) End() {}

func (noopSpan) RecordError(error) {}

func (noopSpan) SetAttribute(string, any) {}
