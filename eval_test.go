package numinput_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/0xCarti/numinput"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "0.5", 0.5},
		{"dot-lead", ".5", 0.5},
		{"dot-trail", "2.", 2},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "9/2/3", 1.5},
		{"div-chain", "10/4/5", 0.5},
		{"precedence", "2+3*4", 14},
		{"precedence-rev", "3*4+2", 14},
		{"parens", "(2+3)*4", 20},
		{"parens-div", "10/(2+3)", 2},
		{"nested", "((2))*(3+(4))", 14},
		{"neg", "-5+2", -3},
		{"neg-paren", "-(2+3)", -5},
		{"neg-nested", "-(2*(1+2))", -6},
		{"plus-sign", "+5-2", 3},
		{"spaced-sign", "- 5+2", -3},
		{"unary-after-op", "2+-3", -1},
		{"unary-after-mul", "2*-3", -6},
		{"double-binary", "2--3", 5},
		{"spaces", " 1 + 2 ", 3},
		{"tabs", "\t7*3\t", 21},
		{"fractions", "0.1*10", 0.1 * 10},
		{"zero-div-num", "0/5", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := numinput.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q evaluated wrong: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalStringError(t *testing.T) {
	t.Run("lex", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"letter", "2+a", 3},
			{"letters", "letters", 1},
			{"symbol", "2$2", 2},
			{"exponent", "1e5", 2},
			{"two-dots", "1.2.3", 1},
			{"dot-only", ".", 1},
			{"huge", "1" + strings.Repeat("0", 309), 1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.LexError), c.pos)
			})
		}
	})
	t.Run("operator", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"star-first", "*2", 1},
			{"slash-first", "/2", 1},
			{"star-after-op", "2+*3", 3},
			{"star-after-open", "(*2)", 2},
			{"double-sign", "--5", 1},
			{"plus-paren", "+(2+3)", 1},
			{"dangling-sign", "2*-", 3},
			{"sign-only", "-", 1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.OperatorError), c.pos)
			})
		}
	})
	t.Run("bracket", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"unclosed", "(2+3", 1},
			{"unopened", "2+3)", 4},
			{"nested-unclosed", "((2)", 1},
			{"extra-close", "(2))", 4},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.BracketError), c.pos)
			})
		}
	})
	t.Run("empty", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"empty", "", 1},
			{"blank", " \t ", 1},
			{"close-first", ")", 1},
			{"empty-parens", "()", 2},
			{"op-close", "(2+)", 4},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.EmptyExpressionError), c.pos)
			})
		}
	})
	t.Run("program", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"trailing-op", "2+", 2},
			{"adjacent-values", "2 3", 3},
			{"adjacent-paren", "2(3)", 3},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.ProgramError), c.pos)
			})
		}
	})
	t.Run("division", func(t *testing.T) {
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"div-zero", "5/0", 2},
			{"zero-div-zero", "0/0", 2},
			{"div-neg-zero", "5/-0", 2},
			{"div-paren-zero", "1/(2-2)", 2},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.DivisionError), c.pos)
			})
		}
	})
	t.Run("overflow", func(t *testing.T) {
		big := "1" + strings.Repeat("0", 308)
		cases := []struct {
			name string
			src  string
			pos  int
		}{
			{"mul", big + "*10", 310},
			{"add", big + "*1.5+" + big + "*1.5", 314},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				checkEvalError(t, c.src, new(*numinput.OverflowError), c.pos)
			})
		}
	})
}

// checkEvalError evaluates src expecting failure, checks the error's
// concrete type against target (a pointer to a pointer type, for errors.As),
// and checks the reported position.
func checkEvalError(t *testing.T, src string, target any, pos int) {
	t.Helper()
	r, err := numinput.EvalString(src)
	if err == nil {
		t.Fatalf("evaluating %q gave no error (result %g)", src, r)
	}
	if !errors.As(err, target) {
		t.Fatalf("evaluating %q gave %#v, not %T", src, err, target)
	}
	var ie numinput.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("error %#v does not implement InputError", err)
	}
	if ie.Pos() != pos {
		t.Errorf("evaluating %q reported position %d, want %d", src, ie.Pos(), pos)
	}
}

func BenchmarkEvalString(b *testing.B) {
	b.Run("plain", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			numinput.EvalString("3*8+2")
		}
	})
	b.Run("parens", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			numinput.EvalString("-(12.5+7.5)/(2*2)")
		}
	})
}
