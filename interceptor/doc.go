// Package interceptor wraps a host application's global error callback with
// telemetry capture.
//
// The wrapper resolves the failing component's display name, optionally
// snapshots its live prop values, records the lifecycle hook the error
// surfaced in, and hands the enriched event to a capture pipeline on the next
// scheduling turn. The previously installed error callback, when one existed,
// always still runs synchronously with its original arguments, so installing
// the interceptor never changes what the host application observes.
//
// Metadata extraction is best effort: a panic while resolving the name or
// reading props is caught locally, logged at warning level, and the capture
// proceeds with whatever metadata was gathered up to that point.
package interceptor
