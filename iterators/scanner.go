package iterators

import (
	"bufio"
	"io"
)

// NewLineScanner returns an iterator over the lines of the reader,
// with the line terminators stripped.
// When the reader is an io.ReadCloser, closing the iterator closes it.
func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{scanner: bufio.NewScanner(r), reader: r}
}

type LineScanner struct {
	scanner *bufio.Scanner
	reader  io.Reader

	value string
}

func (i *LineScanner) Close() error {
	rc, ok := i.reader.(io.ReadCloser)
	if !ok {
		return nil
	}

	return rc.Close()
}

func (i *LineScanner) Err() error {
	return i.scanner.Err()
}

func (i *LineScanner) Next() bool {
	if i.scanner.Err() != nil {
		return false
	}

	if !i.scanner.Scan() {
		return false
	}

	i.value = i.scanner.Text()
	return true
}

func (i *LineScanner) Value() string {
	return i.value
}
