package filter

import (
	"testing"

	"github.com/dyluth/patterns/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestCriteria_Matches(t *testing.T) {
	proto := catalog.Entry{Name: "prototype", Category: catalog.CategoryCreational}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"no filters", Criteria{}, true},
		{"exact glob", Criteria{NameGlob: "prototype"}, true},
		{"wildcard glob", Criteria{NameGlob: "proto*"}, true},
		{"glob is case-insensitive", Criteria{NameGlob: "PROTO*"}, true},
		{"non-matching glob", Criteria{NameGlob: "*factory"}, false},
		{"malformed glob", Criteria{NameGlob: "[proto"}, false},
		{"category", Criteria{Category: "Creational"}, true},
		{"other category", Criteria{Category: catalog.CategoryBehavioral}, false},
		{"both must match", Criteria{NameGlob: "proto*", Category: catalog.CategoryStructural}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(proto))
		})
	}
}

func TestCriteria_Apply(t *testing.T) {
	all := catalog.All()

	c := Criteria{}
	assert.False(t, c.HasFilters())
	assert.Equal(t, all, c.Apply(all))

	c = Criteria{NameGlob: "*factory"}
	assert.True(t, c.HasFilters())
	got := c.Apply(all)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "abstract-factory", got[0].Name)
	}

	c = Criteria{Category: catalog.CategoryBehavioral}
	assert.Empty(t, c.Apply(all))
}
