// Package lines provides an in-memory line source over a text file.
package lines

import (
	"os"

	"github.com/gamely/cubegames/iterators"
)

// Source holds every line of a text file in memory, in file order,
// with the line terminators stripped.
// A Source is immutable once constructed.
type Source struct {
	lines []string
}

// NewSource eagerly reads the whole file at the given path.
// Opening or reading failures are returned as is, without a partial result.
func NewSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	vs, err := iterators.Collect[string](iterators.NewLineScanner(f))
	if err != nil {
		return nil, err
	}

	return &Source{lines: vs}, nil
}

// FromLines builds a Source out of already loaded lines.
func FromLines(vs []string) *Source {
	lines := make([]string, len(vs))
	copy(lines, vs)
	return &Source{lines: lines}
}

// Iterate returns a finite iterator over the stored lines.
// Each call starts a fresh pass from the first line.
func (s *Source) Iterate() *iterators.SliceIter[string] {
	return iterators.Slice(s.lines)
}

// Cycle returns an infinite iterator over the stored lines,
// wrapping around to the first line after the last one.
// The caller must impose its own bound on the iteration.
func (s *Source) Cycle() *iterators.CycleIter[string] {
	return iterators.Cycle(s.lines)
}

// Len returns the count of stored lines.
func (s *Source) Len() int {
	return len(s.lines)
}
