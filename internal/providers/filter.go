package providers

type FilterType string

const FilterPicker FilterType = "Picker"

type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Filter is a declarative picker the host renders as a selection control.
type Filter struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Type    FilterType     `json:"type"`
	Options []FilterOption `json:"options"`
	Default string         `json:"value"`
}

// Filters keeps the pickers in display order.
type Filters []Filter

// FilterValues is the host's current selection, keyed by Filter.Key.
type FilterValues map[string]string

func (fs Filters) Get(key string) (Filter, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f, true
		}
	}

	return Filter{}, false
}

// Defaults returns the default selection for every filter.
func (fs Filters) Defaults() FilterValues {
	out := make(FilterValues, len(fs))
	for _, f := range fs {
		out[f.Key] = f.Default
	}

	return out
}

// Value returns the selected value for key, or the filter default when the
// selection does not name one of its options.
func (fs Filters) Value(values FilterValues, key string) string {
	f, ok := fs.Get(key)
	if !ok {
		return ""
	}

	if v, ok := values[key]; ok {
		if opt, ok := f.Lookup(v); ok {
			return opt.Value
		}
	}

	return f.Default
}

// Lookup finds an option by value or, failing that, by case-sensitive label.
func (f Filter) Lookup(s string) (FilterOption, bool) {
	for _, o := range f.Options {
		if o.Value == s {
			return o, true
		}
	}
	for _, o := range f.Options {
		if o.Label == s {
			return o, true
		}
	}

	return FilterOption{}, false
}
