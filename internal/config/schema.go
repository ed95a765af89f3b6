package config

// Config represents the runner configuration
type Config struct {
	InputDir string  `yaml:"input_dir"`
	LogLevel string  `yaml:"log_level"`
	Answers  Answers `yaml:"answers"`
}

// Answers holds known answers keyed by year, then day
type Answers map[int]map[int]Expected

// Expected contains the known answers for both parts of a day. An empty
// string means the answer is unknown.
type Expected struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

func (a Answers) Lookup(year, day int) (Expected, bool) {
	days, ok := a[year]
	if !ok {
		return Expected{}, false
	}
	expected, ok := days[day]
	return expected, ok
}
