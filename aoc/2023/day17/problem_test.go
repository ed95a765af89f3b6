package aoc2023day17

import (
	"testing"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438967991453
1224686865563
2546548887735
4322674655533`

const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991`

func TestParts(t *testing.T) {
	city, err := parse(example)
	require.NoError(t, err)

	got, err := part1(city)
	require.NoError(t, err)
	assert.Equal(t, 102, got)

	got, err = part2(city)
	require.NoError(t, err)
	assert.Equal(t, 94, got)
}

func TestUltraCrucible(t *testing.T) {
	city, err := parse(unfortunate)
	require.NoError(t, err)

	got, err := part2(city)
	require.NoError(t, err)
	assert.Equal(t, 71, got)
}

func TestNoPath(t *testing.T) {
	city, err := parse("12\n34")
	require.NoError(t, err)

	_, err = part2(city)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestParseNonDigit(t *testing.T) {
	_, err := parse("12\n3x")
	assert.Error(t, err)
}
