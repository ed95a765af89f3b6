package aoc2025day05

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2025, 5, "Cafeteria", parse, part1, part2)

// Range is inclusive at both ends.
type Range struct {
	From, To int
}

func (r Range) contains(id int) bool {
	return r.From <= id && id <= r.To
}

type Inventory struct {
	// Fresh is sorted and has no overlapping or touching ranges.
	Fresh     []Range
	Available []int
}

func parse(input string) (*Inventory, error) {
	blocks := utils.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected fresh ranges and available ingredients separated by a blank line")
	}

	var fresh []Range
	for line := range strings.SplitSeq(blocks[0], "\n") {
		from, to, ok := strings.Cut(line, "-")
		if !ok {
			return nil, fmt.Errorf("malformed range %q", line)
		}
		a, err := utils.ToInt(from)
		if err != nil {
			return nil, err
		}
		b, err := utils.ToInt(to)
		if err != nil {
			return nil, err
		}
		fresh = append(fresh, Range{min(a, b), max(a, b)})
	}

	available, err := utils.Ints(blocks[1])
	if err != nil {
		return nil, fmt.Errorf("available ingredients: %w", err)
	}

	return &Inventory{Fresh: merge(fresh), Available: available}, nil
}

func merge(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int { return cmp.Compare(a.From, b.From) })

	var merged []Range
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.From <= merged[n-1].To+1 {
			merged[n-1].To = max(merged[n-1].To, r.To)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func (inv *Inventory) isFresh(id int) bool {
	i, _ := slices.BinarySearchFunc(inv.Fresh, id, func(r Range, id int) int {
		return cmp.Compare(r.To, id)
	})
	return i < len(inv.Fresh) && inv.Fresh[i].contains(id)
}

func part1(inv *Inventory) (any, error) {
	count := 0
	for _, id := range inv.Available {
		if inv.isFresh(id) {
			count++
		}
	}

	return count, nil
}

func part2(inv *Inventory) (any, error) {
	total := 0
	for _, r := range inv.Fresh {
		total += r.To - r.From + 1
	}

	return total, nil
}
