// Package tracing wires OpenTelemetry into the dictionary collaborator.
// Nothing in the translator core depends on it; spans are recorded on the
// global tracer provider and stay no-op until Init or InitWithExporter runs.
package tracing
