// Package option provides a minimal generic optional value,
// for cases where the zero value of T is a meaningful value on its own.
package option

// Option represents a value of type T that may be absent.
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome tells if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Option[T]) OrZero() T {
	return o.value
}

// Or returns the held value, or the given fallback when absent.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Reduce merges two optional values with a combining function.
// When both sides are present the combined value is returned,
// when only one side is present that side is returned as is,
// and when both are absent the result is None.
func Reduce[T any](a, b Option[T], fn func(T, T) T) Option[T] {
	switch {
	case a.ok && b.ok:
		return Some(fn(a.value, b.value))
	case a.ok:
		return a
	case b.ok:
		return b
	default:
		return None[T]()
	}
}
