package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type provider struct {
	Name     string
	Category string
	Skills   []string
	Location string
}

var providers = []provider{
	{Name: "Shayfer Gardening LLC", Category: "Gardening", Skills: []string{"Lawn mowing", "Garden design"}, Location: "Sherman Oaks, CA"},
	{Name: "Studio City Paint Co", Category: "Painting", Skills: []string{"Interior painting"}, Location: "Studio City, CA"},
	{Name: "Green Thumb Landscaping", Category: "Landscaping", Skills: []string{"Irrigation", "Maintenance"}, Location: "Sherman Oaks, CA"},
}

var providerFields = []Field[provider]{
	Text(func(p provider) string { return p.Name }),
	Text(func(p provider) string { return p.Category }),
	List(func(p provider) []string { return p.Skills }),
}

func names(ps []provider) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches all", "", names(providers)},
		{"whitespace query matches all", "   ", names(providers)},
		{"name match", "paint", []string{"Studio City Paint Co"}},
		{"skill match", "irrigation", []string{"Green Thumb Landscaping"}},
		{"matches several fields", "garden", []string{"Shayfer Gardening LLC"}},
		{"no match", "plumbing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(providers, tt.query, providerFields...)))
		})
	}
}

func TestFilter_CaseAndWhitespaceInvariant(t *testing.T) {
	assert.Equal(t,
		Filter(providers, "garden", providerFields...),
		Filter(providers, "  GARDEN  ", providerFields...),
	)
}

func TestFilter_Idempotent(t *testing.T) {
	for _, q := range []string{"", "garden", "a", "oaks", "zzz"} {
		once := Filter(providers, q, providerFields...)
		twice := Filter(once, q, providerFields...)
		assert.Equal(t, once, twice, "query %q", q)
	}
}

func TestFilter_ReturnsFreshSlice(t *testing.T) {
	out := Filter(providers, "", providerFields...)
	out[0].Name = "mutated"
	assert.Equal(t, "Shayfer Gardening LLC", providers[0].Name)
}

func TestWhere_Conjunction(t *testing.T) {
	location := Text(func(p provider) string { return p.Location })

	got := Where(providers,
		Contains("landscap", providerFields...),
		Contains("sherman", location),
	)
	assert.Equal(t, []string{"Green Thumb Landscaping"}, names(got))

	got = Where(providers,
		Contains("", providerFields...),
		Contains("sherman", location),
	)
	assert.Equal(t, []string{"Shayfer Gardening LLC", "Green Thumb Landscaping"}, names(got))
}

func TestEquals_IsExactNotSubstring(t *testing.T) {
	category := func(p provider) string { return p.Category }

	assert.Len(t, Where(providers, Equals(category, "Painting")), 1)
	assert.Empty(t, Where(providers, Equals(category, "paint")))
	assert.Empty(t, Where(providers, Equals(category, "Paint")))
}

func TestPartition(t *testing.T) {
	category := func(p provider) string { return p.Category }

	matched, rest := Partition(providers, In(category, "Gardening", "Landscaping"))
	assert.Equal(t, []string{"Shayfer Gardening LLC", "Green Thumb Landscaping"}, names(matched))
	assert.Equal(t, []string{"Studio City Paint Co"}, names(rest))
}
