package aoc2021day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7`

func TestParts(t *testing.T) {
	bingo, err := parse(example)
	require.NoError(t, err)
	require.Len(t, bingo.boards, 3)

	got, err := part1(bingo)
	require.NoError(t, err)
	assert.Equal(t, 4512, got)

	got, err = part2(bingo)
	require.NoError(t, err)
	assert.Equal(t, 1924, got)

	// both parts start from fresh boards
	got, err = part1(bingo)
	require.NoError(t, err)
	assert.Equal(t, 4512, got)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no boards":  "1,2,3",
		"bad number": "1,x,3\n\n1 2\n3 4",
		"not square": "1,2\n\n1 2 3\n4 5 6",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(input)
			assert.Error(t, err)
		})
	}
}
