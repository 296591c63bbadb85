// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They are plain functions with no channels and no context, so
// they can back pure operations directly.
//
// Highlights:
// - Succeed: construct a successful Result[T]
// - FailOnError: apply a check that reports its own error
// - Map: transform successful values
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
