package tiny

import (
	"errors"
	"testing"

	"github.com/ib-77/drills/pkg/rop"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	out := Start(rop.Success(5)).Result()

	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()
	errZero := errors.New("zero")
	nonZero := func(n int) error {
		if n == 0 {
			return errZero
		}
		return nil
	}

	mapped := false
	out := FromValue(0).
		Check(nonZero).
		Map(func(n int) int { mapped = true; return 10 / n }).
		Result()

	if !errors.Is(out.Err(), errZero) {
		t.Fatalf("expected 'zero', got: %v", out.Err())
	}
	if mapped {
		t.Fatalf("Map should not run after a failed Check")
	}

	out = FromValue(2).Check(nonZero).Map(func(n int) int { return 10 / n }).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: %v, %v", out.Result(), out.Err())
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	out := Start(rop.Fail[int](errors.New("oops"))).
		Map(func(t int) int { return t + 100 }).
		Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}
