package numinput

// prec returns the binding strength of a binary operator. Multiplicative
// operators bind tighter than additive ones; all are left-associative.
func prec(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	panic("numinput: unknown operator " + string(op))
}

// toPostfix converts a token stream from infix to postfix order using the
// shunting-yard algorithm. Numbers pass through in order; operators are held
// on a stack until an operator of lower precedence, a parenthesis, or the
// end of the input flushes them.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var ops []token
	for _, t := range toks {
		switch t.kind {
		case tokenNum:
			out = append(out, t)
		case tokenOp:
			// Left-associative: equal precedence pops too.
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || prec(top.op) < prec(t.op) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case tokenOpen:
			ops = append(ops, t)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: t.pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("numinput: invalid token " + t.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}
