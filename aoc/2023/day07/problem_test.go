package aoc2023day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483`

func TestParts(t *testing.T) {
	hands, err := parse(example)
	require.NoError(t, err)

	got, err := part1(hands)
	require.NoError(t, err)
	assert.Equal(t, 6440, got)

	got, err = part2(hands)
	require.NoError(t, err)
	assert.Equal(t, 5905, got)

	// the parsed hands are left in input order
	assert.Equal(t, "32T3K", hands[0].Cards)
}

func TestHandType(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   HandType
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPair},
		{"KTJJT", true, FourOfAKind},
		{"JJJJJ", true, FiveOfAKind},
		{"2345J", true, OnePair},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, handType(tt.cards, tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K abc"} {
		_, err := parse(input)
		assert.Error(t, err, input)
	}
}
