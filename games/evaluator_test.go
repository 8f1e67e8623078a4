package games_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gamely/cubegames"
	"github.com/gamely/cubegames/games"
)

// the puzzle's published sample input
const sampleInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEvaluateValidity_SampleInput_ValidGameIdsSummed(t *testing.T) {
	t.Parallel()

	total, err := games.EvaluateValidity(writeInput(t, sampleInput))
	require.Nil(t, err)
	require.Equal(t, 8, total)
}

func TestEvaluatePower_SampleInput_GamePowersSummed(t *testing.T) {
	t.Parallel()

	total, err := games.EvaluatePower(writeInput(t, sampleInput))
	require.Nil(t, err)
	require.Equal(t, 2286, total)
}

func TestEvaluator_BothModes_TwoValidGames(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green\n"+
		"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue\n")
	e := games.NewEvaluator()

	validity, err := e.EvaluateValidity(path)
	require.Nil(t, err)
	require.Equal(t, 3, validity)

	// game 1: 4*2*6, game 2: 1*3*4
	power, err := e.EvaluatePower(path)
	require.Nil(t, err)
	require.Equal(t, 60, power)
}

func TestEvaluator_EmptyInputFile_ZeroReturned(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "")
	e := games.NewEvaluator()

	validity, err := e.EvaluateValidity(path)
	require.Nil(t, err)
	require.Equal(t, 0, validity)

	power, err := e.EvaluatePower(path)
	require.Nil(t, err)
	require.Equal(t, 0, power)
}

func TestEvaluator_FileMissing_IOErrorReturned(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no-such-file.txt")
	e := games.NewEvaluator()

	_, err := e.EvaluateValidity(path)
	require.Error(t, err)

	_, err = e.EvaluatePower(path)
	require.Error(t, err)
}

func TestEvaluator_MalformedRecord_EvaluationAbortsWithTheParseErrorKind(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Game 1: 3 blue\nScore 2: 1 red\nGame 3: 1 green")
	e := games.NewEvaluator()

	total, err := e.EvaluateValidity(path)
	require.ErrorIs(t, err, games.ErrMissingPrefix)
	require.Equal(t, 0, total, "no partial accumulation on malformed input")

	path = writeInput(t, "Game 1: 3 turquoise")
	_, err = e.EvaluatePower(path)
	require.ErrorIs(t, err, cubegames.ErrUnknownColor)
}

func TestEvaluator_RepeatedCalls_EachCallRereadsTheFileIndependently(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Game 7: 1 red")
	e := games.NewEvaluator()

	for pass := 0; pass < 3; pass++ {
		total, err := e.EvaluateValidity(path)
		require.Nil(t, err)
		require.Equal(t, 7, total)
	}
}

func TestEvaluator_CustomLimits_ValidityJudgedAgainstThem(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Game 1: 3 blue\nGame 2: 5 blue")

	e := games.NewEvaluator()
	e.Limits = cubegames.Limits{Red: 1, Green: 1, Blue: 4}

	total, err := e.EvaluateValidity(path)
	require.Nil(t, err)
	require.Equal(t, 1, total, "only game 1 stays within a blue ceiling of 4")
}

func TestEvaluator_AllZeroLimitsConfigured_NoGameIsValid(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "Game 1: 1 red\nGame 2: 1 blue")

	e := games.NewEvaluator()
	e.Limits = cubegames.Limits{}

	total, err := e.EvaluateValidity(path)
	require.Nil(t, err)
	require.Equal(t, 0, total, "a configured zero ceiling means zero cubes, not the default ceiling")
}

func TestEvaluator_Trace_LineCoordinatesAndJudgementsEmitted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := games.NewEvaluator()
	e.Logger = zerolog.New(&buf)
	e.PageLength = 1

	_, err := e.EvaluateValidity(writeInput(t, "Game 1: 1 red\nGame 2: 99 red"))
	require.Nil(t, err)

	out := buf.String()
	require.Contains(t, out, `"mode":"validity"`)
	require.Contains(t, out, `"page":2`)
	require.Contains(t, out, "game is valid")
	require.Contains(t, out, "game is not valid")
}
