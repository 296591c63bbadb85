// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values of a single type.
//
// API surface:
// - Start/FromValue: create a Chain
// - Check: fail the chain when a check reports an error
// - Map: transform the value
// - Result: read the outcome
package tiny
