package aoc2024day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3   4
4   3
2   5
1   3
3   9
3   3`

func TestParts(t *testing.T) {
	lists, err := parse(example)
	require.NoError(t, err)

	got, err := part1(lists)
	require.NoError(t, err)
	assert.Equal(t, 11, got)

	got, err = part2(lists)
	require.NoError(t, err)
	assert.Equal(t, 31, got)

	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, lists.Left, "parsed lists stay unsorted")
}

func TestParseErrors(t *testing.T) {
	_, err := parse("3 4 5")
	assert.Error(t, err)

	_, err = parse("3 x")
	assert.Error(t, err)
}
