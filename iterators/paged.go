package iterators

// Page annotates a value with the page and in-page line coordinate it was produced at.
type Page[T any] struct {
	// PageNumber starts at 1 and increments every time LineNumber would exceed the page length.
	PageNumber int
	// LineNumber starts at 1 within each page.
	LineNumber int
	// Value is the wrapped iterator's element, unchanged.
	Value T
}

// Paged decorates an iterator so every produced element carries a (page, line) coordinate.
// The decoration is purely a labeling concern,
// the wrapped iterator's values and termination are left untouched.
// A page length below 1 is treated as a single unbounded page.
//
// The returned iterator is stateful and not restartable,
// the counters advance monotonically as the wrapped iterator is drained.
func Paged[T any](i Iterator[T], pageLength int) *PagedIter[T] {
	return &PagedIter[T]{src: i, pageLength: pageLength, pageNumber: 1}
}

type PagedIter[T any] struct {
	src        Iterator[T]
	pageLength int

	pageNumber int
	lineNumber int
	value      Page[T]
}

func (i *PagedIter[T]) Close() error {
	return i.src.Close()
}

func (i *PagedIter[T]) Err() error {
	return i.src.Err()
}

func (i *PagedIter[T]) Next() bool {
	if !i.src.Next() {
		return false
	}

	i.lineNumber++
	if 0 < i.pageLength && i.pageLength < i.lineNumber {
		i.pageNumber++
		i.lineNumber = 1
	}

	i.value = Page[T]{
		PageNumber: i.pageNumber,
		LineNumber: i.lineNumber,
		Value:      i.src.Value(),
	}
	return true
}

func (i *PagedIter[T]) Value() Page[T] {
	return i.value
}
