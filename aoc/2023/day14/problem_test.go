package aoc2023day14

import (
	"testing"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

const afterOneCycle = `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`

func TestParts(t *testing.T) {
	platform, err := parse(example)
	require.NoError(t, err)

	got, err := part1(platform)
	require.NoError(t, err)
	assert.Equal(t, 136, got)

	got, err = part2(platform)
	require.NoError(t, err)
	assert.Equal(t, 64, got)

	// parts work on copies
	assert.Equal(t, example, platform.String())
}

func TestSpin(t *testing.T) {
	g, err := grid.Parse(example)
	require.NoError(t, err)

	spin(g)
	assert.Equal(t, afterOneCycle, g.String())
}

func TestParseInvalid(t *testing.T) {
	_, err := parse("O.\n.x")
	assert.Error(t, err)
}
