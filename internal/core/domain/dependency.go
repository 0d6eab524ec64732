package domain

import (
	"slices"
	"strings"
)

// DependencySet is a set of dependency tokens.
// Order is irrelevant for membership; Sorted gives the persisted order.
type DependencySet map[string]struct{}

// NewDependencySet creates a set holding the given tokens.
func NewDependencySet(tokens ...string) DependencySet {
	s := make(DependencySet, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a token.
func (s DependencySet) Add(token string) {
	s[token] = struct{}{}
}

// Contains reports whether the token is in the set.
func (s DependencySet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s DependencySet) Len() int {
	return len(s)
}

// Union adds every token of other to s.
func (s DependencySet) Union(other DependencySet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Difference returns the tokens in s that are not in other.
func (s DependencySet) Difference(other DependencySet) DependencySet {
	diff := make(DependencySet)
	for t := range s {
		if !other.Contains(t) {
			diff[t] = struct{}{}
		}
	}
	return diff
}

// Sorted returns the tokens in lexical order.
func (s DependencySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// ParseDependencyTokens extracts dependency tokens from the content of a declaration file.
// Every line is trimmed; empty lines are dropped and duplicates collapse.
func ParseDependencyTokens(content string) DependencySet {
	set := make(DependencySet)
	for line := range strings.SplitSeq(content, "\n") {
		if token := strings.TrimSpace(line); token != "" {
			set.Add(token)
		}
	}
	return set
}
