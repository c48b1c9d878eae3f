// Package tasks orchestrates long-running catalog operations with real-time progress reporting.
//
// # Core Operation
//
// [ExportEngine.BulkExport] exports multiple collections concurrently:
//   - Fetches each collection (with its games) from the catalog backend
//   - Renders it to the requested format via the formatter package
//   - Writes a manifest summarizing successes and failures
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Implementation
//
// [ExportEngine] depends on [services.Catalog] for collection access and
// respects the backend's rate limits through a token bucket.
package tasks
