package aoc2022day11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1`

func TestParse(t *testing.T) {
	monkeys, err := parse(example)
	require.NoError(t, err)
	require.Len(t, monkeys, 4)

	assert.Equal(t, []int{54, 65, 75, 74}, monkeys[1].items)
	assert.Equal(t, 81, monkeys[2].operation(9))
	assert.Equal(t, 17, monkeys[3].testDivisibleBy)
	assert.Equal(t, 0, monkeys[3].trueMonkeyCondition)
	assert.Equal(t, 1, monkeys[3].falseMonkeyCondition)
}

func TestParts(t *testing.T) {
	monkeys, err := parse(example)
	require.NoError(t, err)

	got, err := part1(monkeys)
	require.NoError(t, err)
	assert.Equal(t, 10605, got)

	got, err = part2(monkeys)
	require.NoError(t, err)
	assert.Equal(t, 2713310158, got)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"short block": "Monkey 0:\n  Starting items: 1",
		"bad operator": `Monkey 0:
  Starting items: 1
  Operation: new = old - 3
  Test: divisible by 2
    If true: throw to monkey 1
    If false: throw to monkey 1`,
		"missing target": `Monkey 0:
  Starting items: 1
  Operation: new = old + 3
  Test: divisible by 2
    If true: throw to monkey 5
    If false: throw to monkey 5`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parse(input)
			assert.Error(t, err)
		})
	}
}
