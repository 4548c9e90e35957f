package josephus

// Option is a list configuration option.
type Option[T any] interface {
	apply(*listOptions[T])
}

type listOptions[T any] struct {
	equal func(a, b T) bool
}

// WithEqual option configures the equality used by IndexOf, Contains and Remove.
//
// By default values are compared with ==.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	if equal == nil {
		panic("josephus: nil equality function")
	}

	return funcOption[T](func(opts *listOptions[T]) {
		opts.equal = equal
	})
}

type funcOption[T any] func(*listOptions[T])

func (o funcOption[T]) apply(opts *listOptions[T]) {
	o(opts)
}
