package aoc2023day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet`

const example2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen`

func TestPart1(t *testing.T) {
	lines, err := parse(example1)
	require.NoError(t, err)

	got, err := part1(lines)
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	lines, err := parse(example2)
	require.NoError(t, err)

	got, err := part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestOverlappingWords(t *testing.T) {
	got, err := part2([]string{"eightwo"})
	require.NoError(t, err)
	assert.Equal(t, 82, got)
}

func TestLineWithoutDigits(t *testing.T) {
	lines, err := parse(example2)
	require.NoError(t, err)

	_, err = part1(lines)
	assert.ErrorContains(t, err, "line 2")
}
