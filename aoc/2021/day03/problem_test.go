package aoc2021day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010`

func TestParts(t *testing.T) {
	lines, err := parse(example)
	require.NoError(t, err)

	got, err := part1(lines)
	require.NoError(t, err)
	assert.Equal(t, 198, got)

	got, err = part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 230, got)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "0101\n011", "01x1"} {
		_, err := parse(input)
		assert.Error(t, err, "input %q", input)
	}
}
