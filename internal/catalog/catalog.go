// Package catalog lists the design patterns implemented in this module and
// resolves user input to one of them.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// MinPrefixLength is the minimum required length for pattern name prefixes.
const MinPrefixLength = 3

// Category is the Gang of Four grouping of a pattern.
type Category string

const (
	CategoryCreational Category = "creational"
	CategoryStructural Category = "structural"
	CategoryBehavioral Category = "behavioral"
)

// Entry describes one implemented pattern.
type Entry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Intent   string   `json:"intent"`
	Package  string   `json:"package"`
	Command  string   `json:"command"` // CLI command demonstrating the pattern
}

var entries = []Entry{
	{
		Name:     "abstract-factory",
		Category: CategoryCreational,
		Intent:   "Provide an interface for creating families of related objects without specifying their concrete classes.",
		Package:  "github.com/dyluth/patterns/pkg/abstractfactory",
		Command:  "factory",
	},
	{
		Name:     "prototype",
		Category: CategoryCreational,
		Intent:   "Specify the kinds of objects to create using a prototypical instance, and create new objects by copying this prototype.",
		Package:  "github.com/dyluth/patterns/pkg/prototype",
		Command:  "clone",
	},
}

// All returns every catalogue entry sorted by name.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve finds the entry matching query.
//
// The function handles three cases:
// 1. Query equals a pattern name (case-insensitive, spaces and underscores
// read as hyphens) - returns it directly
// 2. Query is too short (< 3 chars) - returns validation error
// 3. Query is a prefix - returns the unique match
func Resolve(query string) (Entry, error) {
	normalized := normalize(query)

	for _, e := range entries {
		if e.Name == normalized {
			return e, nil
		}
	}

	if len(normalized) < MinPrefixLength {
		return Entry{}, fmt.Errorf("pattern name must be at least %d characters (got %d)", MinPrefixLength, len(normalized))
	}

	var matches []string
	var match Entry
	for _, e := range All() {
		if strings.HasPrefix(e.Name, normalized) {
			matches = append(matches, e.Name)
			match = e
		}
	}

	switch len(matches) {
	case 0:
		return Entry{}, &NotFoundError{Query: query}
	case 1:
		return match, nil
	default:
		return Entry{}, &AmbiguousError{Query: query, Matches: matches}
	}
}

func normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(q)
}

// NotFoundError indicates no pattern matched the query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no pattern found matching '%s'", e.Query)
}

// AmbiguousError indicates multiple patterns matched the query.
type AmbiguousError struct {
	Query   string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous pattern name '%s' matches %d patterns", e.Query, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly message listing every match.
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: ambiguous pattern name '%s' matches %d patterns:\n", err.Query, len(err.Matches))
	for _, m := range err.Matches {
		fmt.Fprintf(&b, "  %s\n", m)
	}
	b.WriteString("\nUse a longer prefix to uniquely identify the pattern.")
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
