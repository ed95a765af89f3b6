package aoc2022day03

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2022, 3, "Rucksack Reorganization", parse, part1, part2)

func parse(input string) ([]string, error) {
	rucksacks := utils.Lines(input)
	for i, r := range rucksacks {
		if len(r)%2 != 0 {
			return nil, fmt.Errorf("rucksack %d has an odd number of items", i+1)
		}
		for _, c := range r {
			if priority(byte(c)) == 0 {
				return nil, fmt.Errorf("rucksack %d: invalid item %q", i+1, c)
			}
		}
	}

	return rucksacks, nil
}

func part1(rucksacks []string) (any, error) {
	total := 0
	for i, r := range rucksacks {
		half := len(r) / 2
		item, ok := common(r[:half], r[half:])
		if !ok {
			return nil, fmt.Errorf("rucksack %d: no item in both compartments", i+1)
		}
		total += priority(item)
	}

	return total, nil
}

func part2(rucksacks []string) (any, error) {
	if len(rucksacks)%3 != 0 {
		return nil, errors.New("rucksacks do not split into groups of three")
	}

	total := 0
	for i := 0; i < len(rucksacks); i += 3 {
		badge, ok := common(rucksacks[i], rucksacks[i+1], rucksacks[i+2])
		if !ok {
			return nil, fmt.Errorf("group %d has no badge", i/3+1)
		}
		total += priority(badge)
	}

	return total, nil
}

// common returns an item present in every set.
func common(first string, rest ...string) (byte, bool) {
	for i := range len(first) {
		found := true
		for _, other := range rest {
			if !strings.ContainsRune(other, rune(first[i])) {
				found = false
				break
			}
		}
		if found {
			return first[i], true
		}
	}

	return 0, false
}

func priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	}
	return 0
}
