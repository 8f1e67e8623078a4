// Package cubegames holds the domain entities of the cube game puzzle.
//
// A game record is one line of the puzzle input:
//
//	Game 11: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// The record carries an id and the flat sequence of (count, color)
// observations revealed during the game. Round boundaries (semicolons)
// carry no meaning for any of the supported evaluations,
// so the entities do not preserve them.
package cubegames

import (
	"github.com/gamely/cubegames/consterr"
	"github.com/gamely/cubegames/option"
)

// Color is one of the fixed cube colors a game can reveal.
type Color string

const (
	Red   Color = `red`
	Green Color = `green`
	Blue  Color = `blue`
)

// ErrUnknownColor is returned when a color name is not part of the fixed color set.
const ErrUnknownColor consterr.Error = `unknown color name`

// Colors lists every valid Color in its canonical order.
func Colors() []Color {
	return []Color{Red, Green, Blue}
}

// ParseColor maps a raw color name to its Color, or reports ErrUnknownColor.
func ParseColor(raw string) (Color, error) {
	switch c := Color(raw); c {
	case Red, Green, Blue:
		return c, nil
	default:
		return "", ErrUnknownColor
	}
}

// Pair is a single (count, color) observation within a record.
type Pair struct {
	Count int
	Color Color
}

// Record is one parsed game line.
type Record struct {
	ID    int
	Pairs []Pair
}

// Limits holds the per-color cube ceilings a record is validated against.
type Limits struct {
	Red   int `toml:"red"`
	Green int `toml:"green"`
	Blue  int `toml:"blue"`
}

// DefaultLimits returns the puzzle's fixed cube ceilings.
func DefaultLimits() Limits {
	return Limits{Red: 12, Green: 13, Blue: 14}
}

// For returns the ceiling that applies to the given color.
func (l Limits) For(c Color) int {
	switch c {
	case Red:
		return l.Red
	case Green:
		return l.Green
	default:
		return l.Blue
	}
}

// Valid tells if every observation of the record stays within the limits.
// Inspection stops at the first violating pair.
func (r Record) Valid(l Limits) bool {
	_, ok := r.FirstViolation(l)
	return !ok
}

// FirstViolation returns the first pair that exceeds its color's ceiling.
// Pairs after the first violation are not inspected.
func (r Record) FirstViolation(l Limits) (Pair, bool) {
	for _, p := range r.Pairs {
		if p.Count > l.For(p.Color) {
			return p, true
		}
	}
	return Pair{}, false
}

// MaxCounts holds the per-color maximum observed count of a record.
// A color the record never mentions stays absent.
type MaxCounts struct {
	Red   option.Option[int]
	Green option.Option[int]
	Blue  option.Option[int]
}

// MaxCounts folds the record's pairs into per-color maxima.
func (r Record) MaxCounts() MaxCounts {
	maxInt := func(a, b int) int { return max(a, b) }
	var m MaxCounts
	for _, p := range r.Pairs {
		v := option.Some(p.Count)
		switch p.Color {
		case Red:
			m.Red = option.Reduce(m.Red, v, maxInt)
		case Green:
			m.Green = option.Reduce(m.Green, v, maxInt)
		case Blue:
			m.Blue = option.Reduce(m.Blue, v, maxInt)
		}
	}
	return m
}

// Power is the product of the per-color maxima.
// A color that was never observed contributes a factor of zero,
// so a record missing any color has power zero.
func (m MaxCounts) Power() int {
	return m.Red.OrZero() * m.Green.OrZero() * m.Blue.OrZero()
}

// Power is the record's minimum-cube-set power.
func (r Record) Power() int {
	return r.MaxCounts().Power()
}
