package aoc2023day15

import (
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 15, "Lens Library", parse, part1, part2)

// Step is one comma separated entry of the initialization sequence. Focal
// is zero for a removal ('-') step.
type Step struct {
	Raw   string
	Label string
	Focal int
}

type lens struct {
	label string
	focal int
}

// Hash is the Holiday ASCII String Helper algorithm.
func Hash(s string) int {
	cur := 0
	for i := range len(s) {
		cur = (cur + int(s[i])) * 17 % 256
	}
	return cur
}

func parse(input string) ([]Step, error) {
	sequence := strings.ReplaceAll(strings.TrimSpace(input), "\n", "")
	if sequence == "" {
		return nil, fmt.Errorf("empty initialization sequence")
	}

	var steps []Step
	for raw := range strings.SplitSeq(sequence, ",") {
		s := Step{Raw: raw}
		if label, ok := strings.CutSuffix(raw, "-"); ok {
			s.Label = label
		} else {
			label, focal, ok := strings.Cut(raw, "=")
			if !ok {
				return nil, fmt.Errorf("step %q has no operation", raw)
			}
			n, err := utils.ToInt(focal)
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", raw, err)
			}
			if n < 1 || n > 9 {
				return nil, fmt.Errorf("step %q: focal length out of range", raw)
			}
			s.Label, s.Focal = label, n
		}
		if s.Label == "" {
			return nil, fmt.Errorf("step %q has no label", raw)
		}
		steps = append(steps, s)
	}

	return steps, nil
}

func part1(steps []Step) (any, error) {
	total := 0
	for _, s := range steps {
		total += Hash(s.Raw)
	}

	return total, nil
}

func part2(steps []Step) (any, error) {
	var boxes [256][]lens

	for _, s := range steps {
		box := &boxes[Hash(s.Label)]
		i := slices.IndexFunc(*box, func(l lens) bool { return l.label == s.Label })

		switch {
		case s.Focal == 0 && i >= 0:
			*box = slices.Delete(*box, i, i+1)
		case s.Focal == 0:
		case i >= 0:
			(*box)[i].focal = s.Focal
		default:
			*box = append(*box, lens{label: s.Label, focal: s.Focal})
		}
	}

	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}

	return power, nil
}
