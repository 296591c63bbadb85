// Package divide divides the length of an optional text by an integer,
// reporting a zero divisor as a failed rop.Result instead of panicking.
package divide

import (
	"errors"

	"github.com/ib-77/drills/pkg/rop"
	"github.com/ib-77/drills/pkg/rop/tiny"
	"github.com/ib-77/drills/pkg/text"
)

var ErrDivisionByZero = errors.New("Division by zero")

// DivideLength divides the character count of *input by divisor. A nil input
// counts as empty text. The divisor is checked before input is looked at.
func DivideLength(input *string, divisor int) rop.Result[int] {
	return tiny.FromValue(divisor).
		Check(nonZero).
		Map(func(d int) int {
			return length(input) / d
		}).
		Result()
}

// DivideLengthOf is DivideLength for text that is always present.
func DivideLengthOf(input string, divisor int) rop.Result[int] {
	return DivideLength(&input, divisor)
}

func nonZero(divisor int) error {
	if divisor == 0 {
		return ErrDivisionByZero
	}
	return nil
}

func length(input *string) int {
	if input == nil {
		return 0
	}
	return text.Length(*input)
}
