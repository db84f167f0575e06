package filter

import (
	"path/filepath"
	"strings"

	"github.com/dyluth/patterns/internal/catalog"
)

// Criteria defines filtering criteria for catalogue entries.
// All filters are ANDed together - an entry must match ALL criteria to pass.
type Criteria struct {
	NameGlob string           // Glob pattern for the pattern name, empty = no filter
	Category catalog.Category // Exact match (case-insensitive), empty = no filter
}

// Matches returns true if the entry matches all filter criteria.
// Empty criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(e catalog.Entry) bool {
	if c.NameGlob != "" {
		matched, err := filepath.Match(strings.ToLower(c.NameGlob), e.Name)
		if err != nil || !matched {
			return false
		}
	}

	if c.Category != "" && !strings.EqualFold(string(c.Category), string(e.Category)) {
		return false
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.NameGlob != "" || c.Category != ""
}

// Apply returns the entries matching c, preserving order.
func (c *Criteria) Apply(entries []catalog.Entry) []catalog.Entry {
	if !c.HasFilters() {
		return entries
	}
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if c.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
