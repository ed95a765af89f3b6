// Package aoc collects every implemented day.
package aoc

import (
	aoc2020day01 "github.com/povarna/advent-of-code/aoc/2020/day01"
	aoc2020day04 "github.com/povarna/advent-of-code/aoc/2020/day04"
	aoc2021day01 "github.com/povarna/advent-of-code/aoc/2021/day01"
	aoc2021day03 "github.com/povarna/advent-of-code/aoc/2021/day03"
	aoc2021day04 "github.com/povarna/advent-of-code/aoc/2021/day04"
	aoc2021day05 "github.com/povarna/advent-of-code/aoc/2021/day05"
	aoc2022day01 "github.com/povarna/advent-of-code/aoc/2022/day01"
	aoc2022day02 "github.com/povarna/advent-of-code/aoc/2022/day02"
	aoc2022day03 "github.com/povarna/advent-of-code/aoc/2022/day03"
	aoc2022day04 "github.com/povarna/advent-of-code/aoc/2022/day04"
	aoc2022day05 "github.com/povarna/advent-of-code/aoc/2022/day05"
	aoc2022day06 "github.com/povarna/advent-of-code/aoc/2022/day06"
	aoc2022day07 "github.com/povarna/advent-of-code/aoc/2022/day07"
	aoc2022day11 "github.com/povarna/advent-of-code/aoc/2022/day11"
	aoc2023day01 "github.com/povarna/advent-of-code/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/advent-of-code/aoc/2023/day02"
	aoc2023day03 "github.com/povarna/advent-of-code/aoc/2023/day03"
	aoc2023day04 "github.com/povarna/advent-of-code/aoc/2023/day04"
	aoc2023day05 "github.com/povarna/advent-of-code/aoc/2023/day05"
	aoc2023day06 "github.com/povarna/advent-of-code/aoc/2023/day06"
	aoc2023day07 "github.com/povarna/advent-of-code/aoc/2023/day07"
	aoc2023day08 "github.com/povarna/advent-of-code/aoc/2023/day08"
	aoc2023day09 "github.com/povarna/advent-of-code/aoc/2023/day09"
	aoc2023day10 "github.com/povarna/advent-of-code/aoc/2023/day10"
	aoc2023day11 "github.com/povarna/advent-of-code/aoc/2023/day11"
	aoc2023day14 "github.com/povarna/advent-of-code/aoc/2023/day14"
	aoc2023day15 "github.com/povarna/advent-of-code/aoc/2023/day15"
	aoc2023day16 "github.com/povarna/advent-of-code/aoc/2023/day16"
	aoc2023day17 "github.com/povarna/advent-of-code/aoc/2023/day17"
	aoc2023day20 "github.com/povarna/advent-of-code/aoc/2023/day20"
	aoc2023day25 "github.com/povarna/advent-of-code/aoc/2023/day25"
	aoc2024day01 "github.com/povarna/advent-of-code/aoc/2024/day01"
	aoc2024day02 "github.com/povarna/advent-of-code/aoc/2024/day02"
	aoc2024day03 "github.com/povarna/advent-of-code/aoc/2024/day03"
	aoc2024day04 "github.com/povarna/advent-of-code/aoc/2024/day04"
	aoc2025day01 "github.com/povarna/advent-of-code/aoc/2025/day01"
	aoc2025day02 "github.com/povarna/advent-of-code/aoc/2025/day02"
	aoc2025day03 "github.com/povarna/advent-of-code/aoc/2025/day03"
	aoc2025day04 "github.com/povarna/advent-of-code/aoc/2025/day04"
	aoc2025day05 "github.com/povarna/advent-of-code/aoc/2025/day05"
	aoc2025day06 "github.com/povarna/advent-of-code/aoc/2025/day06"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

// All lists the registered puzzles in year, day order.
func All() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		aoc2020day01.Puzzle,
		aoc2020day04.Puzzle,
		aoc2021day01.Puzzle,
		aoc2021day03.Puzzle,
		aoc2021day04.Puzzle,
		aoc2021day05.Puzzle,
		aoc2022day01.Puzzle,
		aoc2022day02.Puzzle,
		aoc2022day03.Puzzle,
		aoc2022day04.Puzzle,
		aoc2022day05.Puzzle,
		aoc2022day06.Puzzle,
		aoc2022day07.Puzzle,
		aoc2022day11.Puzzle,
		aoc2023day01.Puzzle,
		aoc2023day02.Puzzle,
		aoc2023day03.Puzzle,
		aoc2023day04.Puzzle,
		aoc2023day05.Puzzle,
		aoc2023day06.Puzzle,
		aoc2023day07.Puzzle,
		aoc2023day08.Puzzle,
		aoc2023day09.Puzzle,
		aoc2023day10.Puzzle,
		aoc2023day11.Puzzle,
		aoc2023day14.Puzzle,
		aoc2023day15.Puzzle,
		aoc2023day16.Puzzle,
		aoc2023day17.Puzzle,
		aoc2023day20.Puzzle,
		aoc2023day25.Puzzle,
		aoc2024day01.Puzzle,
		aoc2024day02.Puzzle,
		aoc2024day03.Puzzle,
		aoc2024day04.Puzzle,
		aoc2025day01.Puzzle,
		aoc2025day02.Puzzle,
		aoc2025day03.Puzzle,
		aoc2025day04.Puzzle,
		aoc2025day05.Puzzle,
		aoc2025day06.Puzzle,
	}
}

func NewRegistry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(All()...)
}
