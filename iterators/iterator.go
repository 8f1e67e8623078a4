// Package iterators provide iterator implementations.
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly, iterators hide whether the data comes from a file, standard input, or elsewhere.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterators

import "io"

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type Iterator[T any] interface {
	// Closer is required to make it able to cancel iterators where resource being used behind the scene
	// for all other case where the underling io is handled on higher level, it should simply return nil
	io.Closer
	// Next will ensure that Value returns the next item when it is executed
	Next() bool
	// Err return the cause if for some reason by default the Next return false all the time
	Err() error
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() T
}
