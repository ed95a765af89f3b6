package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calories = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"

func setupWorkspace(t *testing.T, part1, part2 string) string {
	t.Helper()

	dir := t.TempDir()
	inputs := filepath.Join(dir, "inputs")
	require.NoError(t, os.MkdirAll(filepath.Join(inputs, "2022"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inputs, "2022", "01.txt"), []byte(calories), 0o644))

	cfg := fmt.Sprintf(`input_dir: %s
log_level: error
answers:
  2022:
    1: { part1: %q, part2: %q }
  2023:
    1: { part1: "142", part2: "281" }
`, inputs, part1, part2)
	path := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	t.Setenv("AOC_CONFIG_PATH", path)
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	return dir
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	setupWorkspace(t, "24000", "45000")

	code, out, _ := run(t, "run", "2022", "1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Part 1: 24000\nPart 2: 45000\n", out)
}

func TestRunWrongAnswer(t *testing.T) {
	setupWorkspace(t, "24000", "1")

	code, out, _ := run(t, "run", "2022", "1")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Part 1: 24000\nPart 2: 45000\n", out)
}

func TestRunExplicitInput(t *testing.T) {
	dir := setupWorkspace(t, "", "")
	path := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n\n2\n"), 0o644))

	code, out, _ := run(t, "run", "2022", "1", "--input", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Part 1: 2\nPart 2: 3\n", out)
}

func TestRunErrors(t *testing.T) {
	setupWorkspace(t, "", "")

	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"not registered", []string{"run", "2023", "24"}, exitNotRegistered, "not registered"},
		{"bad year", []string{"run", "twenty", "1"}, exitFailure, "invalid year"},
		{"missing input", []string{"run", "2023", "1"}, exitFailure, "failed to read input file"},
		{"missing args", []string{"run", "2023"}, exitFailure, "accepts 2 arg(s)"},
		{"unknown flag", []string{"run", "2023", "1", "--bogus"}, exitFailure, "unknown flag: --bogus"},
		{"extra args", []string{"list", "extra"}, exitFailure, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.message)
		})
	}
}

func TestList(t *testing.T) {
	setupWorkspace(t, "", "")

	code, out, _ := run(t, "list", "--year", "2020")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2020/01  Report Repair\n2020/04  Passport Processing\n", out)
}

func TestVerify(t *testing.T) {
	setupWorkspace(t, "24000", "45000")

	code, out, _ := run(t, "verify")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Calorie Counting")
	assert.Contains(t, out, "24000 (correct)")
	assert.Contains(t, out, "1 checked, 0 failed\n")
}

func TestVerifyMismatch(t *testing.T) {
	setupWorkspace(t, "1", "45000")

	code, out, _ := run(t, "verify", "--year", "2022")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "24000 (want 1)")
	assert.Contains(t, out, "1 checked, 1 failed\n")
}

func TestVerifySkipsMissingInput(t *testing.T) {
	setupWorkspace(t, "24000", "45000")

	code, out, _ := run(t, "verify")
	assert.Equal(t, 0, code)
	assert.NotContains(t, out, "Trebuchet")
	assert.Contains(t, out, "1 checked, 0 failed\n")

	code, out, _ = run(t, "verify", "--year", "2023")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0 checked, 0 failed\n", out[strings.Index(out, "\n")+1:])
}
