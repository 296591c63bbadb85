// Package names filters a list of names by length and upper-cases the ones
// that are kept.
//
// - ProcessNames: the fixed rule, keep names of at least MinLength characters
// - Filter: the same with a caller-chosen minimum
// - Seq: lazy form over an iter.Seq, restartable if the source is
// - Check: the per-name step as a rop.Result, explaining a drop
package names

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ib-77/drills/pkg/rop"
	"github.com/ib-77/drills/pkg/rop/solo"
	"github.com/ib-77/drills/pkg/text"
)

// MinLength is the shortest name ProcessNames keeps.
const MinLength = 4

var ErrTooShort = errors.New("name too short")

// ProcessNames keeps names with at least MinLength characters, upper-cased,
// in their original order. The result is never nil.
func ProcessNames(in []string) []string {
	return Filter(in, MinLength)
}

func Filter(in []string, minLen int) []string {
	return slices.AppendSeq(make([]string, 0, len(in)), Seq(slices.Values(in), minLen))
}

// Seq yields the upper-cased form of every name in seq that has at least
// minLen characters. Nothing runs until the sequence is ranged over.
func Seq(seq iter.Seq[string], minLen int) iter.Seq[string] {
	return func(yield func(string) bool) {
		upper := cases.Upper(language.Und)
		for name := range seq {
			res := check(upper, name, minLen)
			if !res.IsSuccess() {
				continue
			}
			if !yield(res.Result()) {
				return
			}
		}
	}
}

// Check runs a single name through the filter. A dropped name fails with an
// error wrapping ErrTooShort.
func Check(name string, minLen int) rop.Result[string] {
	return check(cases.Upper(language.Und), name, minLen)
}

func check(upper cases.Caser, name string, minLen int) rop.Result[string] {
	return solo.Map(
		solo.FailOnError(solo.Succeed(name), func(n string) error {
			if l := text.Length(n); l < minLen {
				return fmt.Errorf("%w: %q has %d characters, need %d", ErrTooShort, n, l, minLen)
			}
			return nil
		}),
		upper.String,
	)
}
