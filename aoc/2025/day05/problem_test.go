package aoc2025day05

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func TestParse(t *testing.T) {
	inv, err := parse(example)
	require.NoError(t, err)

	want := &Inventory{
		Fresh:     []Range{{3, 5}, {10, 20}},
		Available: []int{1, 5, 8, 11, 17, 32},
	}
	if diff := cmp.Diff(want, inv); diff != "" {
		t.Errorf("inventory mismatch (-want +got):\n%s", diff)
	}
}

func TestParts(t *testing.T) {
	inv, err := parse(example)
	require.NoError(t, err)

	got, err := part1(inv)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = part2(inv)
	require.NoError(t, err)
	assert.Equal(t, 14, got)
}

func TestMerge(t *testing.T) {
	got := merge([]Range{{10, 12}, {1, 3}, {4, 5}, {2, 2}, {20, 30}, {25, 26}})
	assert.Equal(t, []Range{{1, 5}, {10, 12}, {20, 30}}, got)
}

func TestReversedRange(t *testing.T) {
	inv, err := parse("5-3\n\n4")
	require.NoError(t, err)
	assert.Equal(t, []Range{{3, 5}}, inv.Fresh)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"3-5", "3-5\n\nx", "3:5\n\n1"} {
		_, err := parse(input)
		assert.Error(t, err, input)
	}
}
