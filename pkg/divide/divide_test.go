package divide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestDivideLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *string
		divisor int
		want    int
	}{
		{"hello by two", ptr("hello"), 2, 2},
		{"absent input", nil, 3, 0},
		{"empty input", ptr(""), 4, 0},
		{"exact", ptr("abcdef"), 3, 2},
		{"negative divisor truncates toward zero", ptr("hello"), -2, -2},
		// 6 bytes, 5 characters.
		{"counts characters", ptr("héllo"), 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := DivideLength(tt.input, tt.divisor)

			require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
			assert.Equal(t, tt.want, res.Result())
			assert.NoError(t, res.Err())
		})
	}
}

func TestDivideLength_ZeroDivisor(t *testing.T) {
	t.Parallel()

	res := DivideLength(ptr("hi"), 0)

	require.False(t, res.IsSuccess())
	require.Error(t, res.Err())
	assert.Equal(t, "Division by zero", res.Err().Error())
	assert.True(t, errors.Is(res.Err(), ErrDivisionByZero))
	assert.False(t, res.IsCancel())
}

func TestDivideLength_ZeroDivisorRegardlessOfInput(t *testing.T) {
	t.Parallel()

	inputs := []*string{nil, ptr(""), ptr("hi"), ptr("a much longer piece of text")}
	for _, in := range inputs {
		res := DivideLength(in, 0)
		assert.True(t, res.IsFailure())
		assert.ErrorIs(t, res.Err(), ErrDivisionByZero)
	}
}

func TestDivideLength_Idempotent(t *testing.T) {
	t.Parallel()

	in := ptr("hello")
	first, firstErr := DivideLength(in, 2).Get()
	second, secondErr := DivideLength(in, 2).Get()

	assert.Equal(t, first, second)
	assert.Equal(t, firstErr, secondErr)
	assert.Equal(t, "hello", *in, "input must not be modified")

	_, err1 := DivideLength(in, 0).Get()
	_, err2 := DivideLength(in, 0).Get()
	assert.Equal(t, err1, err2)
}

func TestDivideLengthOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, DivideLengthOf("hello", 2).ValueOr(-1))
	assert.Equal(t, -1, DivideLengthOf("hello", 0).ValueOr(-1))
}
