package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFilters() Filters {
	return Filters{
		{
			Key:   "sort",
			Label: "Sort by",
			Type:  FilterPicker,
			Options: []FilterOption{
				{Label: "Latest", Value: "latest"},
				{Label: "Hot", Value: "hot"},
			},
			Default: "latest",
		},
		{
			Key:   "genre",
			Label: "Genre",
			Type:  FilterPicker,
			Options: []FilterOption{
				{Label: "All", Value: ""},
				{Label: "Action", Value: "genre/Action"},
			},
		},
	}
}

func TestFiltersValue(t *testing.T) {
	fs := testFilters()

	assert.Equal(t, "latest", fs.Value(nil, "sort"))
	assert.Equal(t, "hot", fs.Value(FilterValues{"sort": "hot"}, "sort"))
	assert.Equal(t, "hot", fs.Value(FilterValues{"sort": "Hot"}, "sort"))
	assert.Equal(t, "latest", fs.Value(FilterValues{"sort": "bogus"}, "sort"))
	assert.Equal(t, "genre/Action", fs.Value(FilterValues{"genre": "Action"}, "genre"))
	assert.Equal(t, "", fs.Value(FilterValues{"genre": ""}, "genre"))
	assert.Equal(t, "", fs.Value(nil, "missing"))
}

func TestFiltersDefaults(t *testing.T) {
	assert.Equal(t, FilterValues{"sort": "latest", "genre": ""}, testFilters().Defaults())
}
