// Package numinput resolves the arithmetic people type into quantity fields.
//
// A value like "3*8+2" or "=10/(2+3)" is evaluated as an expression over
// +, -, *, / and parentheses; a value like "1,234.5" is read as a plain
// number. ParseValue applies the same detection the input fields use: a
// leading "=" always means an expression, operator characters usually do,
// and everything else falls back to plain number parsing. A Resolver
// rewrites a field in place the way the inputs do when they lose focus,
// formatting the result to the precision the field's step attribute implies
// and notifying a listener only when the text actually changed.
//
// Every failure, from a stray letter to division by zero, is an ordinary
// error return; there are no NaN sentinels and no panics.
package numinput
