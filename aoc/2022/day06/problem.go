package aoc2022day06

import (
	"errors"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2022, 6, "Tuning Trouble", parse, part1, part2)

func parse(input string) (string, error) {
	signal := strings.TrimSpace(input)
	if signal == "" {
		return "", errors.New("empty datastream")
	}
	return signal, nil
}

func part1(signal string) (any, error) {
	return findMarker(signal, 4)
}

func part2(signal string) (any, error) {
	return findMarker(signal, 14)
}

// findMarker returns how many characters are read before the first window of
// size distinct characters is complete.
func findMarker(signal string, size int) (int, error) {
	for i := size; i <= len(signal); i++ {
		if markerAppears(signal[i-size : i]) {
			return i, nil
		}
	}

	return 0, puzzle.ErrNoSolution
}

func markerAppears(window string) bool {
	seen := make(map[rune]bool)

	for _, c := range window {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
