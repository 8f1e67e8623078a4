// Package games parses and evaluates cube game record lines.
package games

import (
	"fmt"
	"strconv"

	"github.com/gamely/cubegames"
	"github.com/gamely/cubegames/consterr"
)

// Parse failures carry a distinct kind per violation,
// so callers can decide between aborting and reporting.
const (
	// ErrMissingPrefix is returned when a record does not start with the literal "Game" token.
	ErrMissingPrefix consterr.Error = `record does not start with the "Game" token`
	// ErrBadGameID is returned when the token after "Game" is not a non-negative integer.
	ErrBadGameID consterr.Error = `game id is not a non-negative integer`
	// ErrBadCount is returned when a pair's count token is not a non-negative integer.
	ErrBadCount consterr.Error = `cube count is not a non-negative integer`
	// ErrTruncatedRecord is returned when a trailing count token has no color token after it.
	ErrTruncatedRecord consterr.Error = `record ends with an unpaired count token`
)

// the pair sequence starts after the "Game" and the id tokens
const pairOffset = 2

// ParseRecord interprets a flat token sequence as a game record.
// The sequence must start with the literal "Game" token followed by the game id,
// and every token from there on must form (count, color) pairs in that order.
func ParseRecord(tokens []string) (cubegames.Record, error) {
	var r cubegames.Record

	if len(tokens) == 0 || tokens[0] != "Game" {
		return r, fmt.Errorf("%w: %q", ErrMissingPrefix, tokens)
	}
	if len(tokens) < pairOffset {
		return r, fmt.Errorf("%w: missing id token", ErrBadGameID)
	}

	id, err := strconv.Atoi(tokens[1])
	if err != nil || id < 0 {
		return r, fmt.Errorf("%w: %q", ErrBadGameID, tokens[1])
	}
	r.ID = id

	for at := pairOffset; at < len(tokens); at += 2 {
		count, err := strconv.Atoi(tokens[at])
		if err != nil || count < 0 {
			return r, fmt.Errorf("%w: %q", ErrBadCount, tokens[at])
		}

		if len(tokens) <= at+1 {
			return r, fmt.Errorf("%w: %q has no color", ErrTruncatedRecord, tokens[at])
		}

		color, err := cubegames.ParseColor(tokens[at+1])
		if err != nil {
			return r, fmt.Errorf("%w: %q", err, tokens[at+1])
		}

		r.Pairs = append(r.Pairs, cubegames.Pair{Count: count, Color: color})
	}

	return r, nil
}

// ParseLine tokenizes a raw line and parses it as a game record.
func ParseLine(line string) (cubegames.Record, error) {
	return ParseRecord(Tokenize(line))
}
