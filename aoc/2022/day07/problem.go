package aoc2022day07

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

const (
	totalDiskSpace = 70000000
	requiredSpace  = 30000000
	smallDirLimit  = 100000
)

var Puzzle = puzzle.New(2022, 7, "No Space Left On Device", parse, part1, part2)

type Node struct {
	Name     string
	IsDir    bool
	Size     int
	Parent   *Node
	Children map[string]*Node
}

func NewDir(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		IsDir:    true,
		Parent:   parent,
		Children: make(map[string]*Node),
	}
}

func NewFile(name string, size int, parent *Node) *Node {
	return &Node{
		Name:   name,
		Size:   size,
		Parent: parent,
	}
}

// TotalSize returns the size of a file, or of everything below a directory.
func (n *Node) TotalSize() int {
	if !n.IsDir {
		return n.Size
	}

	total := 0
	for _, child := range n.Children {
		total += child.TotalSize()
	}
	return total
}

// Walk calls fn with every directory and its total size.
func (n *Node) Walk(fn func(dir *Node, size int)) int {
	if !n.IsDir {
		return n.Size
	}

	size := 0
	for _, child := range n.Children {
		size += child.Walk(fn)
	}
	fn(n, size)
	return size
}

func parse(input string) (*Node, error) {
	root := NewDir("/", nil)
	current := root

	for i, line := range utils.Lines(input) {
		switch {
		case strings.HasPrefix(line, "$ cd "):
			target := strings.TrimPrefix(line, "$ cd ")
			switch target {
			case "/":
				current = root
			case "..":
				if current.Parent != nil {
					current = current.Parent
				}
			default:
				child, exists := current.Children[target]
				if !exists {
					child = NewDir(target, current)
					current.Children[target] = child
				}
				if !child.IsDir {
					return nil, fmt.Errorf("line %d: %s is not a directory", i+1, target)
				}
				current = child
			}
		case line == "$ ls":
		case strings.HasPrefix(line, "dir "):
			name := strings.TrimPrefix(line, "dir ")
			if _, exists := current.Children[name]; !exists {
				current.Children[name] = NewDir(name, current)
			}
		default:
			sizeField, name, ok := strings.Cut(line, " ")
			if !ok {
				return nil, fmt.Errorf("line %d: unexpected output %q", i+1, line)
			}
			size, err := strconv.Atoi(sizeField)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid file size %q", i+1, sizeField)
			}
			current.Children[name] = NewFile(name, size, current)
		}
	}

	return root, nil
}

func part1(root *Node) (any, error) {
	total := 0
	root.Walk(func(_ *Node, size int) {
		if size <= smallDirLimit {
			total += size
		}
	})

	return total, nil
}

func part2(root *Node) (any, error) {
	needToFree := requiredSpace - (totalDiskSpace - root.TotalSize())
	if needToFree <= 0 {
		return 0, nil
	}

	smallest := math.MaxInt
	root.Walk(func(_ *Node, size int) {
		if size >= needToFree && size < smallest {
			smallest = size
		}
	})

	if smallest == math.MaxInt {
		return nil, puzzle.ErrNoSolution
	}
	return smallest, nil
}
