package numinput

import "go.uber.org/zap"

const (
	// DefaultPrefix is the marker that forces a field value to be evaluated
	// as an expression.
	DefaultPrefix = "="
	// DefaultMaxDecimals is the number of decimal places a resolved value is
	// rounded to when the field's step implies no precision.
	DefaultMaxDecimals = 10
)

// Option is an option for parsing and resolving field values.
type Option interface {
	option(config) config
}

// config holds the settings shared by ParseValue, CoerceFloat, and Resolver.
type config struct {
	prefix      string
	maxDecimals int
	notify      ChangeFunc
	log         *zap.Logger
}

func defaultConfig() config {
	return config{
		prefix:      DefaultPrefix,
		maxDecimals: DefaultMaxDecimals,
		log:         zap.NewNop(),
	}
}

func (c config) apply(opts []Option) config {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

type (
	prefixopt   string
	decimalsopt int
	notifyopt   ChangeFunc
	loggeropt   struct{ l *zap.Logger }
)

// Prefix sets the marker that forces a value to be evaluated as an
// expression. The default is "=". An empty prefix disables the marker, so
// only values that look like expressions are evaluated as such.
func Prefix(s string) Option {
	return prefixopt(s)
}

func (o prefixopt) option(c config) config {
	c.prefix = string(o)
	return c
}

// MaxDecimals sets the number of decimal places a resolved value is rounded
// to when the field's step implies no precision.
func MaxDecimals(n int) Option {
	return decimalsopt(n)
}

func (o decimalsopt) option(c config) config {
	c.maxDecimals = int(o)
	return c
}

// Notify sets the listener a Resolver calls after rewriting a field's value.
func Notify(fn ChangeFunc) Option {
	return notifyopt(fn)
}

func (o notifyopt) option(c config) config {
	c.notify = ChangeFunc(o)
	return c
}

// Logger sets the logger a Resolver describes its work to. The default
// discards everything.
func Logger(l *zap.Logger) Option {
	return loggeropt{l}
}

func (o loggeropt) option(c config) config {
	if o.l != nil {
		c.log = o.l
	}
	return c
}
