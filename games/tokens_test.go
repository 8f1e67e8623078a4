package games_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gamely/cubegames/games"
)

func TestTokenize_RecordLineGiven_FlatTokenSequenceReturned(t *testing.T) {
	t.Parallel()

	got := games.Tokenize("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")

	expected := []string{
		"Game", "1",
		"3", "blue", "4", "red",
		"1", "red", "2", "green", "6", "blue",
		"2", "green",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_RoundBoundariesAreFlattened(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		games.Tokenize("Game 1: 1 red, 2 blue"),
		games.Tokenize("Game 1: 1 red; 2 blue"),
		"semicolons and commas must tokenize identically")
}

func TestTokenize_RepeatedDelimitersAndPadding_EmptyPiecesDropped(t *testing.T) {
	t.Parallel()

	got := games.Tokenize("  Game ;; 7 :,:  1   red ,, ")
	require.Equal(t, []string{"Game", "7", "1", "red"}, got)
}

func TestTokenize_EmptyLineGiven_NoTokensReturned(t *testing.T) {
	t.Parallel()

	require.Empty(t, games.Tokenize(""))
	require.Empty(t, games.Tokenize("  ,;: "))
}
