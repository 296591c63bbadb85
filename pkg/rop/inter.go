package rop

import "github.com/google/uuid"

// Outcome is the read-only side of a Result, for code that reports on a
// finished operation without building new results from it.
type Outcome[T any] interface {
	Get() (T, error)
	IsSuccess() bool
	IsCancel() bool
	Id() uuid.UUID
}

var _ Outcome[int] = Result[int]{}
