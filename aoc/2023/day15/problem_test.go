package aoc2023day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, Hash("HASH"))
	assert.Equal(t, 0, Hash("rn"))
	assert.Equal(t, 30, Hash("rn=1"))
}

func TestParts(t *testing.T) {
	steps, err := parse(example)
	require.NoError(t, err)

	got, err := part1(steps)
	require.NoError(t, err)
	assert.Equal(t, 1320, got)

	got, err = part2(steps)
	require.NoError(t, err)
	assert.Equal(t, 145, got)
}

func TestWrappedInput(t *testing.T) {
	steps, err := parse("rn=1,cm-,qp=3,cm=2,\nqp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n")
	require.NoError(t, err)

	got, err := part1(steps)
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "rn", "=1", "rn=x", "rn=0"} {
		_, err := parse(input)
		assert.Error(t, err, input)
	}
}
