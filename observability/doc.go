// Package observability provides the structured-logging abstraction used
// across the footprint pipeline. The detection core is fail-soft by
// contract, so data-quality degradations (skipped fragments, unparseable
// URLs) are reported here instead of through error returns.
//
// Callers attach a [Logger] to the context with [WithLogger]; components
// retrieve it with [FromContext], which falls back to a no-op logger so
// logging is never required. A slog-backed implementation lives in the
// slogobs subpackage.
package observability
