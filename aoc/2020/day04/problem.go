package aoc2020day04

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2020, 4, "Passport Processing", parse, part1, part2)

var (
	requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}
	eyeColors      = []string{"amb", "blu", "brn", "gry", "grn", "hzl", "oth"}
)

type Passport struct {
	fields map[string]string
}

func NewPassport(block string) (*Passport, error) {
	fields := make(map[string]string)

	for _, part := range strings.Fields(block) {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("malformed field %q", part)
		}
		fields[key] = value
	}

	return &Passport{fields: fields}, nil
}

func (p *Passport) hasRequiredFields() bool {
	for _, field := range requiredFields {
		if _, ok := p.fields[field]; !ok {
			return false
		}
	}
	return true
}

func (p *Passport) isValid() bool {
	return p.isYearValid("byr", 1920, 2002) &&
		p.isYearValid("iyr", 2010, 2020) &&
		p.isYearValid("eyr", 2020, 2030) &&
		p.isValidHeight() &&
		p.isValidHairColor() &&
		slices.Contains(eyeColors, p.fields["ecl"]) &&
		p.hasValidPassportID()
}

func (p *Passport) isYearValid(field string, minYear, maxYear int) bool {
	v, exist := p.fields[field]
	if !exist || len(v) != 4 {
		return false
	}

	year, err := strconv.Atoi(v)
	if err != nil {
		return false
	}

	return year >= minYear && year <= maxYear
}

func (p *Passport) isValidHeight() bool {
	v, exist := p.fields["hgt"]
	if !exist {
		return false
	}

	var size int
	var measure string
	if n, _ := fmt.Sscanf(v, "%d%s", &size, &measure); n != 2 {
		return false
	}

	switch measure {
	case "cm":
		return size >= 150 && size <= 193
	case "in":
		return size >= 59 && size <= 76
	}

	return false
}

func (p *Passport) isValidHairColor() bool {
	v := p.fields["hcl"]
	if len(v) != 7 || v[0] != '#' {
		return false
	}

	for _, c := range v[1:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}

	return true
}

func (p *Passport) hasValidPassportID() bool {
	v := p.fields["pid"]
	if len(v) != 9 {
		return false
	}

	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func parse(input string) ([]*Passport, error) {
	var passports []*Passport
	for i, block := range utils.Blocks(input) {
		passport, err := NewPassport(block)
		if err != nil {
			return nil, fmt.Errorf("passport %d: %w", i+1, err)
		}
		passports = append(passports, passport)
	}

	return passports, nil
}

func part1(passports []*Passport) (any, error) {
	total := 0
	for _, passport := range passports {
		if passport.hasRequiredFields() {
			total++
		}
	}

	return total, nil
}

func part2(passports []*Passport) (any, error) {
	total := 0
	for _, passport := range passports {
		if passport.isValid() {
			total++
		}
	}

	return total, nil
}
