package iterators

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to unserialize the input stream,
// thus protect the business rules from this information.
//
// A failing transform stops the iteration and surfaces the failure through Err.
func Map[T, U any](i Iterator[T], transform func(T) (U, error)) *MapIter[T, U] {
	return &MapIter[T, U]{src: i, transform: transform}
}

type MapIter[T, U any] struct {
	src       Iterator[T]
	transform func(T) (U, error)

	value U
	err   error
}

func (i *MapIter[T, U]) Close() error {
	return i.src.Close()
}

func (i *MapIter[T, U]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *MapIter[T, U]) Next() bool {
	if i.err != nil {
		return false
	}

	if !i.src.Next() {
		return false
	}

	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}

	i.value = v
	return true
}

func (i *MapIter[T, U]) Value() U {
	return i.value
}
