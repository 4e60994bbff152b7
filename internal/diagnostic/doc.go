// Package diagnostic provides structured errors, warnings, and progress
// notes for the flattening pass.
//
// Key capabilities:
//   - Per-definition failure reports in lenient mode
//   - Severity-tagged, code-tagged messages for stable tooling output
//   - Aggregation into a single error for strict callers
package diagnostic
