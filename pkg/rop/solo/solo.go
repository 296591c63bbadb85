package solo

import (
	"github.com/ib-77/drills/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

// FailOnError keeps a successful input unless check reports an error, in
// which case that exact error becomes the failure.
func FailOnError[T any](input rop.Result[T], check func(in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := check(input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	} else {
		return onError(input.Err())
	}
}
