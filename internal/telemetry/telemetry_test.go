package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartTagsSessionID(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	_, span := Start(context.Background(), "game", "game.tick", attribute.Int("tick.number", 3))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	got := ended[0]
	if got.Name() != "game.tick" {
		t.Errorf("span name = %q, want game.tick", got.Name())
	}
	if got.InstrumentationScope().Name != "digger/game" {
		t.Errorf("tracer = %q, want digger/game", got.InstrumentationScope().Name)
	}

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range got.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if attrs["session.id"].AsString() != SessionID {
		t.Errorf("session.id = %q, want %q", attrs["session.id"].AsString(), SessionID)
	}
	if attrs["tick.number"].AsInt64() != 3 {
		t.Errorf("tick.number = %d, want 3", attrs["tick.number"].AsInt64())
	}
}
