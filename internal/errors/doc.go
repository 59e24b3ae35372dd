// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// evaluation, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
//
// Arithmetic error kinds (invalid argument, not-a-number, divide-by-zero,
// overflow, underflow) are owned by the exact package; ExitCode translates
// them, and the types here, into process exit statuses.
package apperrors
