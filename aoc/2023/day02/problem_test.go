package aoc2023day02

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func TestParse(t *testing.T) {
	games, err := parse(example)
	require.NoError(t, err)
	require.Len(t, games, 5)

	want := Game{
		ID: 1,
		Reveals: []Cubes{
			{Red: 4, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}
	if diff := cmp.Diff(want, games[0]); diff != "" {
		t.Errorf("game 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestParts(t *testing.T) {
	games, err := parse(example)
	require.NoError(t, err)

	got, err := part1(games)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = part2(games)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"Game 1 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
	} {
		_, err := parse(input)
		assert.Error(t, err, input)
	}
}
