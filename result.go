package parc

// Result is the outcome of running a parser: success carrying a value, or
// failure carrying nothing. The zero value is failure.
type Result[R any] struct {
	value R
	ok    bool
}

// Succeed wraps v in a successful Result.
func Succeed[R any](v R) Result[R] { return Result[R]{value: v, ok: true} }

// Fail returns the failed Result.
func Fail[R any]() Result[R] { return Result[R]{} }

// Success reports whether the parse produced a value.
func (r Result[R]) Success() bool { return r.ok }

// GetOrElse returns the parsed value, or def on failure.
func (r Result[R]) GetOrElse(def R) R {
	if r.ok {
		return r.value
	}
	return def
}

// Value returns the parsed value and whether there is one.
func (r Result[R]) Value() (R, bool) { return r.value, r.ok }
