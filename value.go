package numinput

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// plainNumber matches a plain signed decimal literal, the form a field value
// must take to bypass expression evaluation.
var plainNumber = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// decimalNumber additionally allows an exponent, the full form the plain
// number fallback accepts after normalization.
var decimalNumber = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// ParseValue converts a raw field value to a number. A value starting with
// the expression prefix ("=" unless the Prefix option changes it) is always
// evaluated as an expression, a value that reads as arithmetic (see
// LooksLikeExpression) is evaluated as one too, and anything else is parsed
// as a plain number after stripping digit grouping. The error, when non-nil,
// describes why no numeric value is available.
func ParseValue(raw string, opts ...Option) (float64, error) {
	return parseValue(raw, defaultConfig().apply(opts))
}

func parseValue(raw string, cfg config) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, &EmptyExpressionError{Col: 1}
	}
	if cfg.prefix != "" && strings.HasPrefix(text, cfg.prefix) {
		expr := strings.TrimSpace(text[len(cfg.prefix):])
		if expr == "" {
			return 0, &EmptyExpressionError{Col: 1}
		}
		return EvalString(expr)
	}
	if LooksLikeExpression(text) {
		return EvalString(text)
	}
	return parseNumber(text)
}

// LooksLikeExpression reports whether a field value reads as arithmetic
// rather than as a single number: after trimming one leading sign it
// contains an operator or an open parenthesis, and the value as a whole is
// not a plain decimal literal.
func LooksLikeExpression(s string) bool {
	text := strings.TrimSpace(s)
	if text == "" {
		return false
	}
	rest := text
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}
	if !strings.ContainsAny(rest, "+-*/(") {
		return false
	}
	return !plainNumber.MatchString(text)
}

// CoerceFloat converts a raw field value to a number, returning def when the
// value is empty or does not resolve.
func CoerceFloat(raw string, def float64, opts ...Option) float64 {
	v, err := parseValue(raw, defaultConfig().apply(opts))
	if err != nil {
		return def
	}
	return v
}

// parseNumber parses a value that does not read as an expression.
func parseNumber(text string) (float64, error) {
	s := normalizeNumber(text)
	if !decimalNumber.MatchString(s) {
		return 0, &NumberError{Text: text}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &NumberError{Text: text}
	}
	// Underflow to zero is fine; overflow is not a value.
	if math.IsInf(v, 0) {
		return 0, &NumberError{Text: text}
	}
	return v, nil
}

// normalizeNumber strips digit grouping from a plain numeric string. NFKC
// folds no-break and figure spaces to plain spaces (and fullwidth digits to
// ASCII); whitespace and thousands-separator commas are then removed.
func normalizeNumber(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ',' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
