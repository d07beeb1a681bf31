package mixor

// Option holds either a present value (Some) or nothing (None).
type Option[T any] struct {
	value T
	some  bool
}

// Some builds an Option carrying v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None builds an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the contained value; the zero value of T when empty.
func (o Option[T]) Value() T {
	return o.value
}

// ValueOr returns the contained value, or def when empty.
func (o Option[T]) ValueOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}
