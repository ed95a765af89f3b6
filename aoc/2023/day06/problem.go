package aoc2023day06

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 6, "Wait For It", parse, part1, part2)

type Race struct {
	Time, Distance int
}

// Sheet holds the races column by column. Time and Distance keep the digits
// joined without spaces for the single long race.
type Sheet struct {
	Races    []Race
	Time     string
	Distance string
}

func parse(input string) (*Sheet, error) {
	lines := utils.Lines(input)
	if len(lines) != 2 {
		return nil, fmt.Errorf("expected 2 lines, got %d", len(lines))
	}

	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, errors.New("missing Time line")
	}
	distances, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, errors.New("missing Distance line")
	}

	timeValues, err := utils.Ints(times)
	if err != nil {
		return nil, fmt.Errorf("times: %w", err)
	}
	distanceValues, err := utils.Ints(distances)
	if err != nil {
		return nil, fmt.Errorf("distances: %w", err)
	}
	if len(timeValues) != len(distanceValues) {
		return nil, errors.New("times and distances differ in length")
	}

	s := &Sheet{
		Time:     strings.Join(strings.Fields(times), ""),
		Distance: strings.Join(strings.Fields(distances), ""),
	}
	for i := range timeValues {
		s.Races = append(s.Races, Race{timeValues[i], distanceValues[i]})
	}

	return s, nil
}

func part1(s *Sheet) (any, error) {
	product := 1
	for _, race := range s.Races {
		product *= race.ways()
	}

	return product, nil
}

func part2(s *Sheet) (any, error) {
	time, err := utils.ToInt(s.Time)
	if err != nil {
		return nil, err
	}
	distance, err := utils.ToInt(s.Distance)
	if err != nil {
		return nil, err
	}

	return Race{time, distance}.ways(), nil
}

// ways counts the hold times h with h*(T-h) > D. The roots of the quadratic
// bound the range; integer checks correct any floating point drift.
func (r Race) ways() int {
	beats := func(h int) bool { return h*(r.Time-h) > r.Distance }

	disc := float64(r.Time*r.Time - 4*r.Distance)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)

	lo := int(math.Floor((float64(r.Time)-root)/2)) + 1
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= r.Time && !beats(lo) {
		lo++
	}

	hi := int(math.Ceil((float64(r.Time)+root)/2)) - 1
	for hi < r.Time && beats(hi+1) {
		hi++
	}
	for hi >= lo && !beats(hi) {
		hi--
	}

	if hi < lo {
		return 0
	}
	return hi - lo + 1
}
