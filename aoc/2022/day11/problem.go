package aoc2022day11

import (
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2022, 11, "Monkey in the Middle", parse, part1, part2)

type Monkey struct {
	id                   int
	items                []int
	operation            func(int) int
	testDivisibleBy      int
	trueMonkeyCondition  int
	falseMonkeyCondition int
}

func parse(input string) ([]Monkey, error) {
	var monkeys []Monkey
	for i, block := range utils.Blocks(input) {
		monkey, err := parseMonkey(block)
		if err != nil {
			return nil, fmt.Errorf("monkey %d: %w", i, err)
		}
		if monkey.id != i {
			return nil, fmt.Errorf("monkey %d: out of order id %d", i, monkey.id)
		}
		monkeys = append(monkeys, monkey)
	}

	for _, m := range monkeys {
		for _, target := range []int{m.trueMonkeyCondition, m.falseMonkeyCondition} {
			if target < 0 || target >= len(monkeys) || target == m.id {
				return nil, fmt.Errorf("monkey %d: invalid throw target %d", m.id, target)
			}
		}
	}

	return monkeys, nil
}

func parseMonkey(block string) (Monkey, error) {
	lines := strings.Split(block, "\n")
	if len(lines) != 6 {
		return Monkey{}, fmt.Errorf("expected 6 lines, got %d", len(lines))
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var m Monkey
	if _, err := fmt.Sscanf(lines[0], "Monkey %d:", &m.id); err != nil {
		return Monkey{}, fmt.Errorf("header: %w", err)
	}

	items, ok := strings.CutPrefix(lines[1], "Starting items:")
	if !ok {
		return Monkey{}, fmt.Errorf("unexpected line %q", lines[1])
	}
	if strings.TrimSpace(items) != "" {
		parsed, err := utils.IntsSep(items, ",")
		if err != nil {
			return Monkey{}, fmt.Errorf("starting items: %w", err)
		}
		m.items = parsed
	}

	op, err := parseOperation(lines[2])
	if err != nil {
		return Monkey{}, err
	}
	m.operation = op

	if _, err := fmt.Sscanf(lines[3], "Test: divisible by %d", &m.testDivisibleBy); err != nil {
		return Monkey{}, fmt.Errorf("test: %w", err)
	}
	if m.testDivisibleBy <= 0 {
		return Monkey{}, fmt.Errorf("test: divisor must be positive")
	}
	if _, err := fmt.Sscanf(lines[4], "If true: throw to monkey %d", &m.trueMonkeyCondition); err != nil {
		return Monkey{}, fmt.Errorf("true branch: %w", err)
	}
	if _, err := fmt.Sscanf(lines[5], "If false: throw to monkey %d", &m.falseMonkeyCondition); err != nil {
		return Monkey{}, fmt.Errorf("false branch: %w", err)
	}

	return m, nil
}

func parseOperation(line string) (func(int) int, error) {
	expr, ok := strings.CutPrefix(line, "Operation: new = old ")
	if !ok {
		return nil, fmt.Errorf("unexpected line %q", line)
	}

	operator, operand, ok := strings.Cut(expr, " ")
	if !ok {
		return nil, fmt.Errorf("operation: malformed %q", expr)
	}

	if operand == "old" {
		switch operator {
		case "*":
			return func(x int) int { return x * x }, nil
		case "+":
			return func(x int) int { return x + x }, nil
		}
		return nil, fmt.Errorf("operation: unknown operator %q", operator)
	}

	n, err := utils.ToInt(operand)
	if err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}
	switch operator {
	case "*":
		return func(x int) int { return x * n }, nil
	case "+":
		return func(x int) int { return x + n }, nil
	}
	return nil, fmt.Errorf("operation: unknown operator %q", operator)
}

func part1(monkeys []Monkey) (any, error) {
	return monkeyBusiness(monkeys, 20, func(worry int) int { return worry / 3 }), nil
}

// Without relief the worry levels are kept modulo the product of all
// divisors, which preserves every monkey's test.
func part2(monkeys []Monkey) (any, error) {
	bigMod := 1
	for _, monkey := range monkeys {
		bigMod *= monkey.testDivisibleBy
	}

	return monkeyBusiness(monkeys, 10000, func(worry int) int { return worry % bigMod }), nil
}

func monkeyBusiness(monkeys []Monkey, rounds int, relief func(int) int) int {
	items := make([][]int, len(monkeys))
	for i, m := range monkeys {
		items[i] = slices.Clone(m.items)
	}

	inspected := make([]int, len(monkeys))
	for range rounds {
		for id, monkey := range monkeys {
			inspected[id] += len(items[id])

			for _, item := range items[id] {
				worryLevel := relief(monkey.operation(item))
				target := monkey.falseMonkeyCondition
				if worryLevel%monkey.testDivisibleBy == 0 {
					target = monkey.trueMonkeyCondition
				}
				items[target] = append(items[target], worryLevel)
			}
			items[id] = items[id][:0]
		}
	}

	slices.SortFunc(inspected, func(x, y int) int {
		return y - x
	})

	if len(inspected) < 2 {
		return 0
	}
	return inspected[0] * inspected[1]
}
