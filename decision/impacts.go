package decision

import (
	"fmt"
	"strings"
)

// Impact is the optimization direction of one criterion.
type Impact int8

const (
	// Benefit marks a criterion where higher values are better ('+').
	Benefit Impact = iota

	// Cost marks a criterion where lower values are better ('-').
	Cost
)

// String renders the canonical symbol, '+' or '-'.
func (im Impact) String() string {
	if im == Cost {
		return "-"
	}

	return "+"
}

// Impacts is one direction per criterion, column order.
type Impacts []Impact

// ParseImpact maps a single symbol to an Impact. Accepted spellings:
// "+"/"benefit" and "-"/"cost", case-insensitive, surrounding space ignored.
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "benefit":
		return Benefit, nil
	case "-", "cost":
		return Cost, nil
	default:
		return Benefit, fmt.Errorf("%q: %w", s, ErrInvalidImpact)
	}
}

// ParseImpacts maps a slice of symbols to an Impacts vector, aggregating
// every bad symbol into one *ValidationError.
func ParseImpacts(symbols []string) (Impacts, error) {
	var issues []error
	out := make(Impacts, len(symbols))
	var (
		i   int
		err error
	)
	for i = range symbols {
		out[i], err = ParseImpact(symbols[i])
		if err != nil {
			issues = append(issues, fmt.Errorf("impact %d: %w", i, err))
		}
	}
	if err = collect(issues); err != nil {
		return nil, err
	}

	return out, nil
}

// ParseImpactString splits a comma-separated list ("-,+,+") and parses it.
func ParseImpactString(s string) (Impacts, error) {
	return ParseImpacts(strings.Split(s, ","))
}

// Validate checks that the vector covers exactly n criteria.
func (im Impacts) Validate(n int) error {
	if len(im) != n {
		return fmt.Errorf("%d impacts for %d criteria: %w", len(im), n, ErrShapeMismatch)
	}

	return nil
}

// AllBenefit returns a Benefit direction for every one of n criteria.
// Used after direction-folding normalization, where larger is always better.
func AllBenefit(n int) Impacts {
	return make(Impacts, n) // zero value of Impact is Benefit
}

// Strings renders the vector as canonical symbols, column order.
func (im Impacts) Strings() []string {
	out := make([]string, len(im))
	var i int
	for i = range im {
		out[i] = im[i].String()
	}

	return out
}
