package aoc2024day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example1 = `xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))`

const example2 = `xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))`

func TestPart1(t *testing.T) {
	program, err := parse(example1)
	require.NoError(t, err)
	assert.Len(t, program, 4)

	got, err := part1(program)
	require.NoError(t, err)
	assert.Equal(t, 161, got)
}

func TestPart2(t *testing.T) {
	program, err := parse(example2)
	require.NoError(t, err)

	got, err := part2(program)
	require.NoError(t, err)
	assert.Equal(t, 48, got)
}

func TestOperandLimits(t *testing.T) {
	tests := map[string]int{
		"mul(999,999)":       998001,
		"mul(1000,2)":        0,
		"mul( 2,4)":          0,
		"mul(2,4)\nmul(3,3)": 17,
	}

	for input, want := range tests {
		program, err := parse(input)
		require.NoError(t, err)

		got, err := part1(program)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}
