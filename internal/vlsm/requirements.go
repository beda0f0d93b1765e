package vlsm

import (
	"slices"
	"strconv"
	"strings"
)

// RequirementSet is an immutable list of host counts, largest first. Equal
// counts keep their input order.
type RequirementSet struct {
	hosts []int
}

// ParseHostRequirements reads host counts separated by newlines and/or
// commas. Empty tokens are skipped.
func ParseHostRequirements(text string) (RequirementSet, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ',' || r == '\r'
	})

	hosts := make([]int, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimSpace(f)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return RequirementSet{}, &Error{Kind: InvalidHostCount, Input: tok, Cause: err}
		}
		if n <= 0 {
			return RequirementSet{}, &Error{Kind: InvalidHostCount, Input: tok}
		}
		hosts = append(hosts, n)
	}

	return newSortedSet(hosts)
}

// NewRequirementSet validates and sorts already numeric host counts.
func NewRequirementSet(hosts []int) (RequirementSet, error) {
	for _, h := range hosts {
		if h <= 0 {
			return RequirementSet{}, &Error{Kind: InvalidHostCount, Input: strconv.Itoa(h)}
		}
	}
	return newSortedSet(slices.Clone(hosts))
}

func newSortedSet(hosts []int) (RequirementSet, error) {
	if len(hosts) == 0 {
		return RequirementSet{}, &Error{Kind: EmptyRequirementList}
	}
	sortDescending(hosts)
	return RequirementSet{hosts: hosts}, nil
}

func sortDescending(hosts []int) {
	slices.SortStableFunc(hosts, func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
}

// Hosts returns a copy of the sorted host counts.
func (s RequirementSet) Hosts() []int { return slices.Clone(s.hosts) }

// Len returns the number of requirements.
func (s RequirementSet) Len() int { return len(s.hosts) }

// Total returns the sum of all requested hosts.
func (s RequirementSet) Total() int {
	total := 0
	for _, h := range s.hosts {
		total += h
	}
	return total
}

// String joins the host counts with ", ".
func (s RequirementSet) String() string {
	parts := make([]string, len(s.hosts))
	for i, h := range s.hosts {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ", ")
}
