package numinput

import "strconv"

// OperatorError is an error indicating an operator in a position where it
// cannot apply to anything. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was misplaced.
	Operator string
	// Unary is whether the operator was read as a unary sign.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "unary "+strconv.Quote(err.Operator)+" with nothing to apply to")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" with no left operand")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the one left unmatched.
	Left string
	// Right is the closing parenthesis, if it is the one left unmatched.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// OverflowError is an error indicating an operation whose result is not a
// finite number. It implements InputError.
type OverflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator whose result overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "result of "+strconv.Quote(err.Op)+" is not finite")
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// ProgramError is an error indicating a postfix program that does not reduce
// to a single value, either because an operator had too few operands or
// because values were left over. It implements InputError.
type ProgramError struct {
	// Col is the position of the operator or of the end of the expression.
	Col int
	// Op is the operator that was missing operands, if any.
	Op string
	// Vals is the number of values left when the program ended.
	Vals int
}

func (err *ProgramError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" missing operands")
	}
	return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Vals)+" values")
}

func (err *ProgramError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a field value that is neither an
// expression nor a plain number.
type NumberError struct {
	// Text is the value that did not parse.
	Text string
}

func (err *NumberError) Error() string {
	return "not a number: " + strconv.Quote(err.Text)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from an invalid expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*OverflowError)(nil)
	_ InputError = (*ProgramError)(nil)
	_ InputError = (*LexError)(nil)
)
