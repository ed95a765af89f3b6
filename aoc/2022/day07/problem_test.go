package aoc2022day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`

func TestParts(t *testing.T) {
	root, err := parse(example)
	require.NoError(t, err)
	assert.Equal(t, 48381165, root.TotalSize())
	assert.Equal(t, 584, root.Children["a"].Children["e"].TotalSize())

	got, err := part1(root)
	require.NoError(t, err)
	assert.Equal(t, 95437, got)

	got, err = part2(root)
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)
}

func TestParseErrors(t *testing.T) {
	_, err := parse("$ cd /\n$ ls\nabc def")
	assert.Error(t, err)

	_, err = parse("$ cd /\n$ ls\n12 f\n$ cd f")
	assert.Error(t, err)
}
