package numinput

import "math"

// evalPostfix runs a postfix program on a value stack. Numbers push;
// operators pop the right operand, then the left, and push the result.
// Exactly one value must remain at the end.
func evalPostfix(prog []token) (float64, error) {
	var stack []float64
	for _, t := range prog {
		switch t.kind {
		case tokenNum:
			stack = append(stack, t.num)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &ProgramError{Col: t.pos, Op: string(t.op)}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			var v float64
			switch t.op {
			case '+':
				v = l + r
			case '-':
				v = l - r
			case '*':
				v = l * r
			case '/':
				if r == 0 {
					return 0, &DivisionError{Col: t.pos}
				}
				v = l / r
			default:
				panic("numinput: unknown operator " + string(t.op))
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, &OverflowError{Col: t.pos, Op: string(t.op)}
			}
			stack[len(stack)-1] = v
		default:
			panic("numinput: invalid token in program: " + t.String())
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return 0, &EmptyExpressionError{Col: 1}
	default:
		return 0, &ProgramError{Col: prog[len(prog)-1].pos, Vals: len(stack)}
	}
}

// EvalString evaluates an arithmetic expression over +, -, *, / and
// parentheses and returns its value. The result is always finite: division
// by zero and overflow report errors rather than infinities, and any error
// means no numeric value is available. Errors describing a problem with the
// expression implement InputError.
func EvalString(expr string) (float64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	prog, err := toPostfix(toks)
	if err != nil {
		return 0, err
	}
	return evalPostfix(prog)
}
