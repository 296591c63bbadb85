package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join result back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Successes keeps the values of successful results, in input order.
func Successes[T any](results []Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			out = append(out, r.Result())
		}
	}
	return out
}

// Failures joins the errors of all failed results; nil when none failed.
func Failures[T any](results []Result[T]) error {
	var errs []error
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Err())
		}
	}
	return errors.Join(errs...)
}
