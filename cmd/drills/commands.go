package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/drills/pkg/contact"
	"github.com/ib-77/drills/pkg/divide"
	"github.com/ib-77/drills/pkg/names"
	"github.com/ib-77/drills/pkg/rop"
	"github.com/ib-77/drills/pkg/text"
)

type LengthCmd struct {
	Text string `arg:"" help:"Text to measure."`
}

func (c *LengthCmd) Run(e *env) error {
	n := text.Length(c.Text)
	e.log.Debug().Str("text", c.Text).Int("length", n).Msg("length")
	_, err := fmt.Fprintln(e.out, n)
	return err
}

type AppendCmd struct {
	Base   string `arg:"" help:"Text to grow."`
	Suffix string `arg:"" help:"Text appended to base."`
}

func (c *AppendCmd) Run(e *env) error {
	value := c.Base
	n := text.AppendAndCount(&value, c.Suffix)
	e.log.Debug().Str("base", c.Base).Str("suffix", c.Suffix).Int("length", n).Msg("append")
	_, err := fmt.Fprintf(e.out, "%s\t%d\n", value, n)
	return err
}

type GreetCmd struct {
	Name  string `help:"Person name."`
	Phone string `help:"Person phone number."`
	Email string `help:"Email address."`
}

func (c *GreetCmd) Run(e *env) error {
	var who contact.Contact
	switch {
	case c.Name != "" && c.Email != "":
		return errors.New("greet: use either --name or --email, not both")
	case c.Name != "":
		who = contact.NewPerson(c.Name, c.Phone)
	case c.Email != "":
		who = contact.NewEmail(c.Email)
	default:
		return errors.New("greet: one of --name or --email is required")
	}

	e.log.Debug().Stringer("contact", who).Msg("greet")
	_, err := fmt.Fprintln(e.out, who.Greet())
	return err
}

type DivideCmd struct {
	Divisor int      `arg:"" help:"Integer divisor. Put -- before a negative one: divide -- -2 text."`
	Text    []string `arg:"" optional:"" help:"Text whose length is divided. Omit for no text."`
}

func (c *DivideCmd) Run(e *env) error {
	var input *string
	if len(c.Text) > 0 {
		joined := strings.Join(c.Text, " ")
		input = &joined
	}

	q, err := report[int](e, "divide", divide.DivideLength(input, c.Divisor))
	if err != nil {
		return err
	}

	e.log.Debug().Bool("has_text", input != nil).Int("divisor", c.Divisor).Msg("divide")
	_, err = fmt.Fprintln(e.out, q)
	return err
}

// report logs a finished outcome under its trace id and unwraps it.
func report[T any](e *env, op string, o rop.Outcome[T]) (T, error) {
	v, err := o.Get()
	switch {
	case o.IsCancel():
		e.log.Warn().Err(err).Str("result_id", o.Id().String()).Msg(op + " canceled")
	case !o.IsSuccess():
		e.log.Error().Err(err).Str("result_id", o.Id().String()).Msg(op + " failed")
	default:
		e.log.Debug().Str("result_id", o.Id().String()).Msg(op + " done")
	}
	return v, err
}

type NamesCmd struct {
	Names []string `arg:"" optional:"" help:"Names to filter."`
}

func (c *NamesCmd) Run(e *env) error {
	results := make([]rop.Result[string], 0, len(c.Names))
	for _, n := range c.Names {
		results = append(results, names.Check(n, e.cfg.Names.MinLength))
	}

	for _, dropped := range rop.GetErrors(rop.Failures(results)) {
		e.log.Debug().Err(dropped).Msg("name dropped")
	}

	for _, kept := range rop.Successes(results) {
		if _, err := fmt.Fprintln(e.out, kept); err != nil {
			return err
		}
	}
	return nil
}

type CountCmd struct {
	Text string `arg:"" help:"Text to scan."`
	Char string `arg:"" help:"Single character to count."`
}

func (c *CountCmd) Run(e *env) error {
	if utf8.RuneCountInString(c.Char) != 1 {
		return fmt.Errorf("count: expected a single character, got %q", c.Char)
	}
	ch, size := utf8.DecodeRuneInString(c.Char)
	if ch == utf8.RuneError && size == 1 {
		return fmt.Errorf("count: expected a single character, got invalid UTF-8 %q", c.Char)
	}

	n := text.CountChar(c.Text, ch)
	e.log.Debug().Str("text", c.Text).Str("char", c.Char).Int("count", n).Msg("count")
	_, err := fmt.Fprintln(e.out, n)
	return err
}
