package cmd

import (
	"fmt"

	"github.com/brogergvhs/novelfetch/internal/config"
	"github.com/brogergvhs/novelfetch/internal/providers"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagPage  int
	flagSort  string
	flagGenre string
	flagPick  bool
)

func init() {
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List novels from a site listing, ordered by --sort or narrowed to --genre",
		Args:  cobra.NoArgs,
		RunE:  runPopular,
	}

	popularCmd.Flags().IntVar(&flagPage, "page", 1, "listing page")
	popularCmd.Flags().StringVar(&flagSort, "sort", "", "sort option, by value or label (see `filters`)")
	popularCmd.Flags().StringVar(&flagGenre, "genre", "", "genre option, by value or label (see `filters`)")
	popularCmd.Flags().BoolVar(&flagPick, "pick", false, "choose sort and genre interactively")

	rootCmd.AddCommand(popularCmd)
}

func runPopular(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, config.Options{DefaultSort: flagSort, DefaultGenre: flagGenre})
	if err != nil {
		return err
	}

	filters := a.provider.Filters()
	values := filters.Defaults()

	if flagPick {
		if values, err = pickFilters(filters, values); err != nil {
			return err
		}
	} else {
		if err := setFilter(filters, values, "sort", a.cfg.DefaultSort); err != nil {
			return err
		}
		if err := setFilter(filters, values, "genre", a.cfg.DefaultGenre); err != nil {
			return err
		}
	}

	a.log.Debugf("filters: %v", values)

	items, err := a.provider.PopularNovels(commandContext(cmd), flagPage, values)
	if err != nil {
		return err
	}

	return printNovels(a.out, items)
}

// setFilter resolves a user supplied value or label onto the option value.
func setFilter(fs providers.Filters, values providers.FilterValues, key, input string) error {
	if input == "" {
		return nil
	}

	f, ok := fs.Get(key)
	if !ok {
		return fmt.Errorf("unknown filter %q", key)
	}

	opt, ok := f.Lookup(input)
	if !ok {
		return fmt.Errorf("%s: unknown option %q", f.Label, input)
	}

	values[key] = opt.Value
	return nil
}

func pickFilters(fs providers.Filters, values providers.FilterValues) (providers.FilterValues, error) {
	for _, f := range fs {
		labels := make([]string, len(f.Options))
		cursor := 0
		for i, o := range f.Options {
			labels[i] = o.Label
			if o.Value == values[f.Key] {
				cursor = i
			}
		}

		prompt := promptui.Select{
			Label:     f.Label,
			Items:     labels,
			CursorPos: cursor,
			Size:      12,
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("selection cancelled")
		}

		values[f.Key] = f.Options[idx].Value
	}

	return values, nil
}
