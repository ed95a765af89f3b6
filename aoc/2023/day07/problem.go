package aoc2023day07

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 7, "Camel Cards", parse, part1, part2)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

type Hand struct {
	Cards string
	Bid   int
}

func parse(input string) ([]Hand, error) {
	var hands []Hand
	for i, line := range utils.Lines(input) {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("line %d: malformed hand %q", i+1, line)
		}
		for _, c := range cards {
			if !strings.ContainsRune(cardOrder, c) {
				return nil, fmt.Errorf("line %d: unknown card %q", i+1, c)
			}
		}

		n, err := utils.ToInt(bid)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, Hand{Cards: cards, Bid: n})
	}

	return hands, nil
}

func part1(hands []Hand) (any, error) {
	return winnings(hands, false), nil
}

func part2(hands []Hand) (any, error) {
	return winnings(hands, true), nil
}

func winnings(hands []Hand, jokers bool) int {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}

	ranked := slices.Clone(hands)
	slices.SortFunc(ranked, func(a, b Hand) int {
		if c := cmp.Compare(handType(a.Cards, jokers), handType(b.Cards, jokers)); c != 0 {
			return c
		}
		for i := range len(a.Cards) {
			if c := cmp.Compare(strings.IndexByte(order, a.Cards[i]), strings.IndexByte(order, b.Cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return total
}

// handType classifies the cards. Jokers join the most common other card.
func handType(cards string, jokers bool) HandType {
	counts := make(map[rune]int)
	for _, c := range cards {
		counts[c]++
	}

	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}

	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)

	if len(sizes) == 0 {
		return FiveOfAKind
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return FiveOfAKind
	case sizes[0] == 4:
		return FourOfAKind
	case sizes[0] == 3 && sizes[1] == 2:
		return FullHouse
	case sizes[0] == 3:
		return ThreeOfAKind
	case sizes[0] == 2 && sizes[1] == 2:
		return TwoPair
	case sizes[0] == 2:
		return OnePair
	}
	return HighCard
}
