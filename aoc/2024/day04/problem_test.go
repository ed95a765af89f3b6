package aoc2024day04

import (
	"testing"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSAASXS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

func TestParts(t *testing.T) {
	g, err := grid.Parse(example)
	require.NoError(t, err)

	got, err := part1(g)
	require.NoError(t, err)
	assert.Equal(t, 18, got)

	got, err = part2(g)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

func TestThroughPuzzle(t *testing.T) {
	parsed, err := Puzzle.Parse("XMAS\nMMAA\nASAS\nSAMX")
	require.NoError(t, err)

	got, err := parsed.Part1()
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestRaggedInput(t *testing.T) {
	_, err := Puzzle.Parse("XMAS\nXM")
	assert.ErrorIs(t, err, grid.ErrRagged)
}
