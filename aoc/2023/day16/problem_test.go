package aoc2023day16

import (
	"testing"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const example = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestParts(t *testing.T) {
	contraption, err := parse(example)
	require.NoError(t, err)

	got, err := part1(contraption)
	require.NoError(t, err)
	assert.Equal(t, 46, got)

	got, err = part2(contraption)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestBestEntry(t *testing.T) {
	contraption, err := parse(example)
	require.NoError(t, err)

	assert.Equal(t, 51, energized(contraption, beam{grid.Point{X: 3, Y: 0}, down}))
}

func TestDeflect(t *testing.T) {
	assert.Equal(t, []int{up}, deflect('/', right))
	assert.Equal(t, []int{left}, deflect('/', down))
	assert.Equal(t, []int{down}, deflect('\\', right))
	assert.Equal(t, []int{left}, deflect('\\', up))
	assert.Equal(t, []int{up, down}, deflect('|', left))
	assert.Equal(t, []int{up}, deflect('|', up))
	assert.Equal(t, []int{left, right}, deflect('-', down))
}

func TestParseErrors(t *testing.T) {
	_, err := parse("..\n...")
	assert.ErrorIs(t, err, grid.ErrRagged)

	_, err = parse("..\n.x")
	assert.Error(t, err)
}
