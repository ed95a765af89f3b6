package aoc2022day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8`

func TestParts(t *testing.T) {
	pairs, err := parse(example)
	require.NoError(t, err)

	got, err := part1(pairs)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = part2(pairs)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestParseInvalid(t *testing.T) {
	_, err := parse("2-4,6")
	assert.Error(t, err)
}
