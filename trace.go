// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceHook is the only tracing contract the core exposes: every
// externally observable state transition — a root popped off the search
// queue, a parent batch requested, a split applied, a band committed —
// calls exactly one of these methods. The engine never picks a logging or
// tracing backend itself; it only ever calls through this interface,
// mirroring the teacher's slog.Handler-based Logger middleware
// (logger.go), generalized from "one HTTP request" to "one graph
// transition".
type TraceHook interface {
	OnRootPopped(root Token, width int)
	OnParentBatch(exhausted Token, parents []Token)
	OnSplitApplied(root Token, offsets []int)
	OnBandCommitted(band Band)
}

// NoopTrace is the default TraceHook; every method is a no-op.
type NoopTrace struct{}

func (NoopTrace) OnRootPopped(Token, int)      {}
func (NoopTrace) OnParentBatch(Token, []Token) {}
func (NoopTrace) OnSplitApplied(Token, []int)  {}
func (NoopTrace) OnBandCommitted(Band)         {}

// OtelTrace adapts a TraceHook onto an OpenTelemetry tracer. Each call
// opens and immediately ends one span, since these are point-in-time
// events rather than long-lived operations — this module never holds a
// span open across a yield point. No exporter or collector lives here;
// wiring one is entirely the embedding application's concern.
type OtelTrace struct {
	Tracer trace.Tracer
}

func (t OtelTrace) OnRootPopped(root Token, width int) {
	_, span := t.Tracer.Start(context.Background(), "hypergraph.root_popped",
		trace.WithAttributes(
			attribute.Int64("token.index", int64(root.index)),
			attribute.Int("token.width", width),
		))
	span.End()
}

func (t OtelTrace) OnParentBatch(exhausted Token, parents []Token) {
	_, span := t.Tracer.Start(context.Background(), "hypergraph.parent_batch",
		trace.WithAttributes(
			attribute.Int64("token.index", int64(exhausted.index)),
			attribute.Int("parents.count", len(parents)),
		))
	span.End()
}

func (t OtelTrace) OnSplitApplied(root Token, offsets []int) {
	attrs := make([]attribute.KeyValue, 0, len(offsets)+1)
	attrs = append(attrs, attribute.Int64("token.index", int64(root.index)))
	for i, off := range offsets {
		attrs = append(attrs, attribute.Int(stringOffsetKey(i), off))
	}
	_, span := t.Tracer.Start(context.Background(), "hypergraph.split_applied", trace.WithAttributes(attrs...))
	span.End()
}

func (t OtelTrace) OnBandCommitted(band Band) {
	_, span := t.Tracer.Start(context.Background(), "hypergraph.band_committed",
		trace.WithAttributes(
			attribute.Int("band.start", band.StartBound),
			attribute.Int("band.end", band.EndBound),
		))
	span.End()
}

// SlogTrace adapts a TraceHook onto a *slog.Logger, the way the teacher's
// logger middleware (logger.go) turned one HTTP request's outcome into one
// log line, here one graph transition's outcome. It logs at Info with the
// root/checkpoint/width attribute keys internal/slogpretty colors
// specially, plus parents.count and offsets.count. Pair it with
// internal/slogpretty.DefaultHandler for colorized terminal output during
// ingest, the same way the teacher pairs its Logger middleware with a
// pretty handler in development.
type SlogTrace struct {
	Logger *slog.Logger
}

func (t SlogTrace) OnRootPopped(root Token, width int) {
	t.Logger.Info("root popped", slog.Int64("root", int64(root.index)), slog.Int("width", width))
}

func (t SlogTrace) OnParentBatch(exhausted Token, parents []Token) {
	t.Logger.Info("parent batch",
		slog.Int64("root", int64(exhausted.index)),
		slog.Int("parents.count", len(parents)),
	)
}

func (t SlogTrace) OnSplitApplied(root Token, offsets []int) {
	t.Logger.Info("split applied", slog.Int64("root", int64(root.index)), slog.Int("offsets.count", len(offsets)))
}

func (t SlogTrace) OnBandCommitted(band Band) {
	t.Logger.Info("band committed",
		slog.Int("checkpoint", band.EndBound),
		slog.Int("width", band.EndBound-band.StartBound),
	)
}

func stringOffsetKey(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return "offset." + string(digits[i])
	}
	return "offset.n"
}
