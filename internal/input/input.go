// Package input loads puzzle input files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

type Input struct {
	Path    string
	Text    string
	Size    int
	Elapsed time.Duration
}

// PathFor returns the conventional location of a puzzle's input:
// <dir>/<year>/<day>.txt with a two digit day.
func PathFor(dir string, id puzzle.ID) string {
	return filepath.Join(dir, fmt.Sprintf("%04d", id.Year), fmt.Sprintf("%02d.txt", id.Day))
}

func Load(path string) (*Input, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return &Input{
		Path:    path,
		Text:    Normalize(string(data)),
		Size:    len(data),
		Elapsed: time.Since(start),
	}, nil
}

// Normalize converts CRLF line endings and drops trailing newlines. Leading
// whitespace is kept since some puzzles are column aligned.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}
