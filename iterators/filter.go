package iterators

// Filter decorates an iterator so only elements matching the selector are produced.
func Filter[T any](i Iterator[T], selector func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{src: i, match: selector}
}

type FilterIter[T any] struct {
	src   Iterator[T]
	match func(T) bool

	value T
}

func (i *FilterIter[T]) Close() error {
	return i.src.Close()
}

func (i *FilterIter[T]) Err() error {
	return i.src.Err()
}

func (i *FilterIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.match(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *FilterIter[T]) Value() T {
	return i.value
}
