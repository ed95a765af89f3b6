package aoc2023day05

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 5, "If You Give A Seed A Fertilizer", parse, part1, part2)

// Rule maps [Source, Source+Length) onto [Dest, Dest+Length).
type Rule struct {
	Dest, Source, Length int
}

type Map struct {
	Name  string
	Rules []Rule
}

func (m Map) convert(v int) int {
	for _, r := range m.Rules {
		if v >= r.Source && v < r.Source+r.Length {
			return r.Dest + v - r.Source
		}
	}
	return v
}

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

// convertIntervals splits every interval at rule boundaries and maps each
// piece. Pieces no rule covers pass through unchanged.
func (m Map) convertIntervals(in []Interval) []Interval {
	var out []Interval
	pending := in
	for _, r := range m.Rules {
		var unmatched []Interval
		ruleEnd := r.Source + r.Length
		for _, iv := range pending {
			lo, hi := max(iv.Start, r.Source), min(iv.End, ruleEnd)
			if lo >= hi {
				unmatched = append(unmatched, iv)
				continue
			}
			out = append(out, Interval{lo - r.Source + r.Dest, hi - r.Source + r.Dest})
			if iv.Start < lo {
				unmatched = append(unmatched, Interval{iv.Start, lo})
			}
			if hi < iv.End {
				unmatched = append(unmatched, Interval{hi, iv.End})
			}
		}
		pending = unmatched
	}

	return append(out, pending...)
}

type Almanac struct {
	Seeds []int
	Maps  []Map
}

func parse(input string) (*Almanac, error) {
	blocks := utils.Blocks(input)
	if len(blocks) == 0 {
		return nil, errors.New("empty almanac")
	}

	seeds, ok := strings.CutPrefix(blocks[0], "seeds:")
	if !ok {
		return nil, errors.New("missing seeds line")
	}

	a := &Almanac{}
	var err error
	if a.Seeds, err = utils.Ints(seeds); err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	for _, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		name, ok := strings.CutSuffix(lines[0], " map:")
		if !ok {
			return nil, fmt.Errorf("unexpected map header %q", lines[0])
		}

		m := Map{Name: name}
		for _, line := range lines[1:] {
			nums, err := utils.Ints(line)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("%s: expected 3 numbers, got %q", name, line)
			}
			m.Rules = append(m.Rules, Rule{Dest: nums[0], Source: nums[1], Length: nums[2]})
		}
		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

func part1(a *Almanac) (any, error) {
	lowest := math.MaxInt
	for _, seed := range a.Seeds {
		v := seed
		for _, m := range a.Maps {
			v = m.convert(v)
		}
		lowest = min(lowest, v)
	}

	if lowest == math.MaxInt {
		return nil, puzzle.ErrNoSolution
	}
	return lowest, nil
}

// part2 reads the seeds as (start, length) pairs.
func part2(a *Almanac) (any, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, errors.New("seed ranges must come in pairs")
	}

	var intervals []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		intervals = append(intervals, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}

	for _, m := range a.Maps {
		intervals = m.convertIntervals(intervals)
	}

	lowest := math.MaxInt
	for _, iv := range intervals {
		if iv.Start < iv.End {
			lowest = min(lowest, iv.Start)
		}
	}

	if lowest == math.MaxInt {
		return nil, puzzle.ErrNoSolution
	}
	return lowest, nil
}
