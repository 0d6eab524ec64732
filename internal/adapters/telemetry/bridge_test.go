package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/depsync/internal/adapters/telemetry"
	"go.trai.ch/depsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageStart(gomock.Any(), "", "inventory", gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "inventory")
	defer span.End()

	rwSpan, ok := span.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	bridge.OnStart(context.Background(), rwSpan)
}

func TestBridge_OnStartChildCarriesParentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	parentCtx, parent := tracer.Start(context.Background(), "sync")
	defer parent.End()
	_, child := tracer.Start(parentCtx, "fetch svc-a")
	defer child.End()

	parentID := parent.SpanContext().SpanID().String()
	childID := child.SpanContext().SpanID().String()
	mockRenderer.EXPECT().OnStageStart(childID, parentID, "fetch svc-a", gomock.Any()).Times(1)

	rwSpan, ok := child.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	bridge.OnStart(parentCtx, rwSpan)
}

func TestBridge_OnStartWithNilRenderer(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	ctx, span := tracer.Start(context.Background(), "inventory")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), nil).Times(1)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "inventory")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).Times(1)

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("test")
	_, span := tracer.Start(context.Background(), "inventory")
	span.SetStatus(codes.Error, "cf orgs failed")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}
