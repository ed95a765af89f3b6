// Package utils holds the small text helpers most puzzle parsers need.
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	return n, nil
}

// Lines splits the input on newlines, ignoring trailing empty lines.
func Lines(input string) []string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n")
}

// Blocks splits the input on blank lines.
func Blocks(input string) []string {
	input = strings.Trim(input, "\n")
	if input == "" {
		return nil
	}

	return strings.Split(input, "\n\n")
}

// Ints converts whitespace separated numbers.
func Ints(s string) ([]int, error) {
	return IntsSep(s, "")
}

// IntsSep converts numbers separated by sep. An empty sep splits on whitespace.
func IntsSep(s, sep string) ([]int, error) {
	var parts []string
	if sep == "" {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(strings.TrimSpace(s), sep)
	}

	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := ToInt(part)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}

	return nums, nil
}
