// Package tracer provides distributed tracing via OpenTelemetry.
//
// It wraps the OTel SDK behind a small API: StartSpan, RecordErrorOnSpan,
// SetAttributes, plus carrier helpers for propagating trace context across
// service boundaries. Export is gated by TRACING_ENABLED so local runs keep
// span-creating code paths live without needing a collector.
package tracer
