package numinput

import "go.uber.org/zap"

// ChangeFunc receives change notifications after a Resolver rewrites a
// field's value.
type ChangeFunc func(f Field, before, after string)

// Field is the handle to a numeric input field: its current text, a way to
// rewrite it, and the step attribute that implies its display precision.
// Step returns "" or "any" when the field is unconstrained.
type Field interface {
	Value() string
	SetValue(string)
	Step() string
}

// TextField is an in-memory Field. The zero value is an empty field with no
// step. Type records a user edit and marks the field dirty; a successful
// Resolve marks it clean again. A field abandoned mid-edit keeps its literal
// text.
type TextField struct {
	text  string
	step  string
	dirty bool
}

// NewTextField returns an empty field with the given step attribute.
func NewTextField(step string) *TextField {
	return &TextField{step: step}
}

// Value returns the field's current text.
func (f *TextField) Value() string { return f.text }

// SetValue replaces the field's text, like a programmatic value assignment.
// It does not change the field's dirty state.
func (f *TextField) SetValue(text string) { f.text = text }

// Step returns the field's step attribute.
func (f *TextField) Step() string { return f.step }

// Type replaces the field's text as a user edit, marking the field dirty.
func (f *TextField) Type(text string) {
	f.text = text
	f.dirty = true
}

// Dirty reports whether the field has been edited since it last resolved.
func (f *TextField) Dirty() bool { return f.dirty }

// Resolver rewrites field values in place the way quantity inputs resolve on
// blur: parse the text as an expression or plain number, format the result
// to the precision the field's step implies, and write it back only when the
// text actually changes. It is not safe to use a Resolver concurrently on
// the same Field.
type Resolver struct {
	cfg config
}

// NewResolver returns a Resolver with the given options applied.
func NewResolver(opts ...Option) *Resolver {
	return &Resolver{cfg: defaultConfig().apply(opts)}
}

// Resolve parses f's value and rewrites it in canonical form, reporting
// whether the text changed. The notification listener, if any, runs only on
// a rewrite. On failure the field keeps its literal text and the error says
// why no numeric value is available; an empty field fails that way too.
func (r *Resolver) Resolve(f Field) (changed bool, err error) {
	raw := f.Value()
	v, err := parseValue(raw, r.cfg)
	if err != nil {
		r.cfg.log.Debug("field did not resolve",
			zap.String("value", raw),
			zap.Error(err),
		)
		return false, err
	}
	out := r.format(v, f.Step())
	if out != raw {
		f.SetValue(out)
		if r.cfg.notify != nil {
			r.cfg.notify(f, raw, out)
		}
		r.cfg.log.Debug("resolved field",
			zap.String("from", raw),
			zap.String("to", out),
		)
		changed = true
	}
	if tf, ok := f.(*TextField); ok {
		tf.dirty = false
	}
	return changed, nil
}

// ParseField parses a field's current value without rewriting it.
func (r *Resolver) ParseField(f Field) (float64, error) {
	return parseValue(f.Value(), r.cfg)
}

// format renders a resolved value per the field's step, falling back to the
// resolver's own decimal limit when the step implies no precision.
func (r *Resolver) format(v float64, step string) string {
	if d, ok := stepDecimals(step); ok {
		return formatFixed(v, d)
	}
	return trimDecimals(v, r.cfg.maxDecimals)
}
