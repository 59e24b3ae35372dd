// Package orchestration coordinates expression evaluation across one or more
// backends. It runs backends concurrently, traces each evaluation with
// OpenTelemetry spans, and cross-checks the rendered results so a divergence
// between the native kernel and an oracle surfaces as a mismatch instead of a
// silently wrong answer.
package orchestration
