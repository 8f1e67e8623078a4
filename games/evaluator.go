package games

import (
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/gamely/cubegames"
	"github.com/gamely/cubegames/iterators"
	"github.com/gamely/cubegames/lines"
)

// Evaluator reads a record file and aggregates its records into a single integer.
//
// Every evaluation call re-reads its input file independently,
// there is no shared state between calls.
// An I/O failure is returned from the file loading step,
// a malformed record aborts the whole evaluation with no partial result.
type Evaluator struct {
	// Limits holds the per-color ceilings used by the validity mode.
	// They are used exactly as configured, a zero ceiling really means zero cubes,
	// so construct through NewEvaluator to start from the default ceilings.
	Limits cubegames.Limits
	// PageLength sets the diagnostic page size for line coordinates.
	// When left zero, the whole file forms a single page.
	PageLength int
	// Logger receives the diagnostic trace of the evaluation.
	// The trace is observational only and not part of the contract.
	Logger zerolog.Logger
}

// NewEvaluator returns an Evaluator with the default cube limits and a silenced trace.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Limits: cubegames.DefaultLimits(),
		Logger: zerolog.Nop(),
	}
}

// EvaluateValidity evaluates the file at path with the default limits and a silenced trace.
func EvaluateValidity(path string) (int, error) {
	return NewEvaluator().EvaluateValidity(path)
}

// EvaluatePower evaluates the file at path with a silenced trace.
func EvaluatePower(path string) (int, error) {
	return NewEvaluator().EvaluatePower(path)
}

// EvaluateValidity sums the ids of every record whose observations stay within the limits.
func (e *Evaluator) EvaluateValidity(path string) (int, error) {
	trace := e.trace("validity", path)

	recs, err := e.records(path, trace)
	if err != nil {
		return 0, err
	}

	total, err := iterators.Reduce(recs, 0, func(sum int, r cubegames.Record) int {
		if p, ok := r.FirstViolation(e.Limits); ok {
			trace.Debug().
				Int("game", r.ID).
				Int("count", p.Count).
				Str("color", string(p.Color)).
				Msg("game is not valid")
			return sum
		}

		trace.Debug().Int("game", r.ID).Msg("game is valid")
		return sum + r.ID
	})
	if err != nil {
		return 0, err
	}

	trace.Debug().Int("result", total).Msg("validity sum")
	return total, nil
}

// EvaluatePower sums the power of every record,
// where power is the product of the record's per-color maxima
// and an unseen color contributes a factor of zero.
func (e *Evaluator) EvaluatePower(path string) (int, error) {
	trace := e.trace("power", path)

	recs, err := e.records(path, trace)
	if err != nil {
		return 0, err
	}

	total, err := iterators.Reduce(recs, 0, func(sum int, r cubegames.Record) int {
		m := r.MaxCounts()
		power := m.Power()
		trace.Debug().
			Int("game", r.ID).
			Int("red", m.Red.OrZero()).
			Int("green", m.Green.OrZero()).
			Int("blue", m.Blue.OrZero()).
			Int("power", power).
			Msg("game power")
		return sum + power
	})
	if err != nil {
		return 0, err
	}

	trace.Debug().Int("result", total).Msg("power sum")
	return total, nil
}

// records loads the file and returns the parsed record stream,
// with each line labelled by its diagnostic (page, line) coordinate.
func (e *Evaluator) records(path string, trace zerolog.Logger) (iterators.Iterator[cubegames.Record], error) {
	src, err := lines.NewSource(path)
	if err != nil {
		return nil, err
	}

	pageLength := e.PageLength
	if pageLength < 1 {
		pageLength = src.Len()
	}

	paged := iterators.Paged[string](src.Iterate(), pageLength)
	return iterators.Map(paged, func(p iterators.Page[string]) (cubegames.Record, error) {
		trace.Debug().
			Int("page", p.PageNumber).
			Int("line", p.LineNumber).
			Str("content", p.Value).
			Msg("processing input line")

		r, err := ParseLine(p.Value)
		if err != nil {
			trace.Debug().
				Int("page", p.PageNumber).
				Int("line", p.LineNumber).
				Err(err).
				Msg("malformed record")
		}
		return r, err
	}), nil
}

// trace tags every evaluation run with its own id,
// so interleaved runs stay distinguishable in the output.
func (e *Evaluator) trace(mode, path string) zerolog.Logger {
	return e.Logger.With().
		Str("run", uuid.NewV4().String()).
		Str("mode", mode).
		Str("path", path).
		Logger()
}
