package aoc2021day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2`

func TestParts(t *testing.T) {
	vents, err := parse(example)
	require.NoError(t, err)

	got, err := part1(vents)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = part2(vents)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestParseErrors(t *testing.T) {
	_, err := parse("0,9 -> 5")
	assert.Error(t, err)

	_, err = parse("0,0 -> 1,3")
	assert.Error(t, err)
}
