package numinput

import (
	"errors"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// token is a lexical element of an expression: a number, a binary operator,
// or a parenthesis. Unary signs do not survive lexing; they are folded into
// the number they apply to.
type token struct {
	kind tokenKind
	num  float64 // value when kind is tokenNum
	op   byte    // one of + - * / when kind is tokenOp
	pos  int     // 1-based rune column of the start of the token
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text() + "@" + strconv.Itoa(t.pos)
}

// text renders the token as it would appear in an expression.
func (t token) text() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return string(t.op)
	case tokenOpen:
		return "("
	case tokenClose:
		return ")"
	}
	return ""
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a number, including any folded unary sign.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

type lexer struct {
	src  string
	i    int // byte offset of the next rune
	rune int // 1-based column of the next rune
}

// peek decodes the next rune without consuming it. ok is false at the end of
// the input.
func (l *lexer) peek() (r rune, ok bool) {
	if l.i >= len(l.src) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(l.src[l.i:])
	return r, true
}

// next consumes the next rune.
func (l *lexer) next() {
	_, sz := utf8.DecodeRuneInString(l.src[l.i:])
	l.i += sz
	l.rune++
}

// skipSpace consumes whitespace.
func (l *lexer) skipSpace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.next()
	}
}

// tokenize lexes an entire expression. Unary signs are resolved here: a sign
// at the start of the expression, after an operator, or after an open
// parenthesis binds to the number that follows it, and a unary - before an
// open parenthesis becomes a subtraction from zero, so -(2+3) is 0-(2+3).
func tokenize(src string) ([]token, error) {
	l := &lexer{src: src, rune: 1}
	var toks []token
	for {
		l.skipSpace()
		r, ok := l.peek()
		if !ok {
			return toks, nil
		}
		pos := l.rune
		switch {
		case isNumStart(r):
			n, err := l.scanNum()
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokenNum, num: n, pos: pos})
		case r == '+' || r == '-':
			l.next()
			if !unaryPos(toks) {
				toks = append(toks, token{kind: tokenOp, op: byte(r), pos: pos})
				continue
			}
			l.skipSpace()
			nr, ok := l.peek()
			switch {
			case ok && isNumStart(nr):
				n, err := l.scanNum()
				if err != nil {
					return nil, err
				}
				if r == '-' {
					n = -n
				}
				toks = append(toks, token{kind: tokenNum, num: n, pos: pos})
			case ok && nr == '(' && r == '-':
				toks = append(toks,
					token{kind: tokenNum, num: 0, pos: pos},
					token{kind: tokenOp, op: '-', pos: pos},
				)
			default:
				return nil, &OperatorError{Col: pos, Operator: string(r), Unary: true}
			}
		case r == '*' || r == '/':
			if !valueEnd(toks) {
				return nil, &OperatorError{Col: pos, Operator: string(r)}
			}
			l.next()
			toks = append(toks, token{kind: tokenOp, op: byte(r), pos: pos})
		case r == '(':
			l.next()
			toks = append(toks, token{kind: tokenOpen, pos: pos})
		case r == ')':
			if !valueEnd(toks) {
				return nil, &EmptyExpressionError{Col: pos, End: ")"}
			}
			l.next()
			toks = append(toks, token{kind: tokenClose, pos: pos})
		default:
			l.next()
			return nil, &LexError{Text: string(r), Col: pos}
		}
	}
}

func isNumStart(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// unaryPos reports whether a sign at the current position is unary: at the
// start of the expression, after an operator, or after an open parenthesis.
func unaryPos(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	k := toks[len(toks)-1].kind
	return k == tokenOp || k == tokenOpen
}

// valueEnd reports whether the previous token ends a value, which is what
// *, /, and ) must follow.
func valueEnd(toks []token) bool {
	if len(toks) == 0 {
		return false
	}
	k := toks[len(toks)-1].kind
	return k == tokenNum || k == tokenClose
}

// scanNum scans a number literal: digits with at most one dot. The scan
// stops at the first rune that is neither.
func (l *lexer) scanNum() (float64, error) {
	start := l.i
	col := l.rune
	var dig, dot bool
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r == '.' {
			if dot {
				// Include the second dot in the error text.
				l.next()
				return 0, l.error("number", start, col)
			}
			dot = true
		} else if '0' <= r && r <= '9' {
			dig = true
		} else {
			break
		}
		l.next()
	}
	if !dig {
		return 0, l.error("number", start, col)
	}
	v, err := strconv.ParseFloat(l.src[start:l.i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, l.error("number", start, col)
	}
	// Underflow to zero is fine; overflow is not a value.
	if math.IsInf(v, 0) {
		return 0, l.error("number", start, col)
	}
	return v, nil
}

func (l *lexer) error(kind string, start, col int) error {
	return &LexError{
		Text: l.src[start:l.i],
		Kind: kind,
		Col:  col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it failed.
	Text string
	// Kind is the kind of token the lexer was scanning. This is "number" or,
	// for a rune that cannot start any token, the empty string.
	Kind string
	// Col is the 1-based rune column of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
