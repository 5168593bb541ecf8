// Package pattern is a small query helper over regexp that returns a single
// match, or a single capturing group of a single match.
package pattern

import (
	"fmt"
	"regexp"
)

type query struct {
	group      int
	occurrence int
	ignoreCase bool
}

// Option tunes a Match call
type Option func(*query)

// WithGroup selects a capturing group. Index 0 is the first parenthesised group.
func WithGroup(i int) Option {
	return func(q *query) { q.group = i }
}

// WithOccurrence selects which match to return. Index 0 is the first match.
func WithOccurrence(i int) Option {
	return func(q *query) { q.occurrence = i }
}

// IgnoreCase makes the expression case-insensitive
func IgnoreCase() Option {
	return func(q *query) { q.ignoreCase = true }
}

// Match scans text in multiline mode and returns the selected match.
// The boolean is false when there is no match, no such occurrence, or the
// requested group does not exist or did not participate in the match.
func Match(expr, text string, opts ...Option) (string, bool, error) {
	q := query{group: -1, occurrence: -1}
	for _, opt := range opts {
		opt(&q)
	}

	flags := "(?m)"
	if q.ignoreCase {
		flags = "(?mi)"
	}
	re, err := regexp.Compile(flags + expr)
	if err != nil {
		return "", false, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}

	n := q.occurrence + 1
	if q.occurrence < 0 {
		n = 1
	}
	matches := re.FindAllStringSubmatchIndex(text, n)
	if len(matches) == 0 {
		return "", false, nil
	}
	idx := 0
	if q.occurrence >= 0 {
		if q.occurrence >= len(matches) {
			return "", false, nil
		}
		idx = q.occurrence
	}
	loc := matches[idx]

	if q.group < 0 {
		return text[loc[0]:loc[1]], true, nil
	}
	g := q.group + 1
	if 2*g+1 >= len(loc) || loc[2*g] < 0 {
		return "", false, nil
	}
	return text[loc[2*g]:loc[2*g+1]], true, nil
}

// Matches reports whether expr is found anywhere in text
func Matches(expr, text string) (bool, error) {
	_, ok, err := Match(expr, text)
	return ok, err
}
