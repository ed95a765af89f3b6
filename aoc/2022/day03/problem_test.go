package aoc2022day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw`

func TestParts(t *testing.T) {
	rucksacks, err := parse(example)
	require.NoError(t, err)

	got, err := part1(rucksacks)
	require.NoError(t, err)
	assert.Equal(t, 157, got)

	got, err = part2(rucksacks)
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 16, priority('p'))
	assert.Equal(t, 38, priority('L'))
	assert.Equal(t, 0, priority('1'))
}

func TestErrors(t *testing.T) {
	_, err := parse("abc")
	assert.Error(t, err)

	_, err = part1([]string{"abcd"})
	assert.Error(t, err)

	_, err = part2([]string{"aa", "aa"})
	assert.Error(t, err)
}
