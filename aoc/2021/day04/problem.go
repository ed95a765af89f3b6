package aoc2021day04

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2021, 4, "Giant Squid", parse, part1, part2)

type Bingo struct {
	numbers []int
	boards  [][][]int
}

func parse(input string) (*Bingo, error) {
	blocks := utils.Blocks(input)
	if len(blocks) < 2 {
		return nil, errors.New("expected drawn numbers followed by at least one board")
	}

	numbers, err := utils.IntsSep(blocks[0], ",")
	if err != nil {
		return nil, fmt.Errorf("drawn numbers: %w", err)
	}

	bingo := &Bingo{numbers: numbers}
	for i, group := range blocks[1:] {
		var board [][]int
		for line := range strings.SplitSeq(strings.TrimSpace(group), "\n") {
			row, err := utils.Ints(line)
			if err != nil {
				return nil, fmt.Errorf("board %d: %w", i+1, err)
			}
			board = append(board, row)
		}

		for _, row := range board {
			if len(row) != len(board) {
				return nil, fmt.Errorf("board %d is not square", i+1)
			}
		}

		bingo.boards = append(bingo.boards, board)
	}

	return bingo, nil
}

func part1(bingo *Bingo) (any, error) {
	scores := bingo.play()
	if len(scores) == 0 {
		return nil, puzzle.ErrNoSolution
	}

	return scores[0], nil
}

func part2(bingo *Bingo) (any, error) {
	scores := bingo.play()
	if len(scores) == 0 {
		return nil, puzzle.ErrNoSolution
	}

	return scores[len(scores)-1], nil
}

// play draws every number and returns the final scores in winning order.
func (b *Bingo) play() []int {
	states := make([]*BoardState, len(b.boards))
	for i, board := range b.boards {
		states[i] = newBoardState(board)
	}

	var scores []int
	alreadyWon := make([]bool, len(states))
	for _, n := range b.numbers {
		for bi, state := range states {
			if alreadyWon[bi] {
				continue
			}
			if state.pickNum(n) {
				scores = append(scores, state.score()*n)
				alreadyWon[bi] = true
			}
		}
	}

	return scores
}

type BoardState struct {
	board  [][]int
	picked [][]bool
}

func newBoardState(board [][]int) *BoardState {
	picked := make([][]bool, len(board))
	for i := range picked {
		picked[i] = make([]bool, len(board[i]))
	}
	return &BoardState{
		board:  board,
		picked: picked,
	}
}

// pickNum marks num and reports whether the board now has a full row or column.
func (b *BoardState) pickNum(num int) bool {
	for r, rows := range b.board {
		for c, v := range rows {
			if v == num {
				b.picked[r][c] = true
			}
		}
	}

	// boards are square
	for i := range b.board {
		isFullRow, isFullCol := true, true
		for j := range b.board {
			if !b.picked[i][j] {
				isFullRow = false
			}
			if !b.picked[j][i] {
				isFullCol = false
			}
		}
		if isFullRow || isFullCol {
			return true
		}
	}

	return false
}

// score sums the unmarked cells.
func (b *BoardState) score() int {
	var score int
	for r, rows := range b.board {
		for c, v := range rows {
			if !b.picked[r][c] {
				score += v
			}
		}
	}

	return score
}
