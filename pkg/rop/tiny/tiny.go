package tiny

import (
	"github.com/ib-77/drills/pkg/rop"
	"github.com/ib-77/drills/pkg/rop/solo"
)

type Chain[T any] struct {
	res rop.Result[T]
}

func Start[T any](r rop.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(rop.Success(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// Check fails the chain with the error returned by check, if any.
func (c Chain[T]) Check(check func(t T) error) Chain[T] {
	return Chain[T]{res: solo.FailOnError(c.res, check)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, onSuccess)}
}
