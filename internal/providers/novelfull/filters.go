package novelfull

import "github.com/brogergvhs/novelfetch/internal/providers"

// Option values are path fragments appended to the site base.
var siteFilters = providers.Filters{
	{
		Key:   "sort",
		Label: "Sort by",
		Type:  providers.FilterPicker,
		Options: []providers.FilterOption{
			{Label: "Latest Release", Value: "latest-release-novel"},
			{Label: "Hot Novel", Value: "hot-novel"},
			{Label: "Completed Novel", Value: "completed-novel"},
			{Label: "Most Popular", Value: "most-popular"},
		},
		Default: "most-popular",
	},
	{
		Key:   "genre",
		Label: "Genre",
		Type:  providers.FilterPicker,
		Options: []providers.FilterOption{
			{Label: "All", Value: ""},
			{Label: "Action", Value: "genre/Action"},
			{Label: "Adult", Value: "genre/Adult"},
			{Label: "Adventure", Value: "genre/Adventure"},
			{Label: "Comedy", Value: "genre/Comedy"},
			{Label: "Drama", Value: "genre/Drama"},
			{Label: "Eastern", Value: "genre/Eastern"},
			{Label: "Fantasy", Value: "genre/Fantasy"},
			{Label: "Harem", Value: "genre/Harem"},
			{Label: "Historical", Value: "genre/Historical"},
			{Label: "Horror", Value: "genre/Horror"},
			{Label: "Josei", Value: "genre/Josei"},
			{Label: "Martial Arts", Value: "genre/Martial+Arts"},
			{Label: "Mature", Value: "genre/Mature"},
			{Label: "Mecha", Value: "genre/Mecha"},
			{Label: "Mystery", Value: "genre/Mystery"},
			{Label: "Psychological", Value: "genre/Psychological"},
			{Label: "Romance", Value: "genre/Romance"},
			{Label: "School Life", Value: "genre/School+Life"},
			{Label: "Sci-fi", Value: "genre/Sci-fi"},
			{Label: "Seinen", Value: "genre/Seinen"},
			{Label: "Shoujo", Value: "genre/Shoujo"},
			{Label: "Shounen", Value: "genre/Shounen"},
			{Label: "Slice of Life", Value: "genre/Slice+of+Life"},
			{Label: "Sports", Value: "genre/Sports"},
			{Label: "Supernatural", Value: "genre/Supernatural"},
			{Label: "Tragedy", Value: "genre/Tragedy"},
			{Label: "Wuxia", Value: "genre/Wuxia"},
			{Label: "Xianxia", Value: "genre/Xianxia"},
			{Label: "Xuanhuan", Value: "genre/Xuanhuan"},
		},
		Default: "",
	},
}
