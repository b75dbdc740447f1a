// Package options implements generic functional options shared by the
// frame encoder and the string escaper.
package options

// Option configures a target of type T, usually a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option. An error from fn aborts Apply.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps fn, which cannot fail, as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
