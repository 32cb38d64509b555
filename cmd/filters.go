package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/brogergvhs/novelfetch/internal/config"

	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the listing filters the site offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}

		fs := a.provider.Filters()
		if flagJSON {
			return printJSON(a.out, fs)
		}

		for _, f := range fs {
			fmt.Fprintf(a.out, "%s (--%s, %s)\n", f.Label, f.Key, f.Type)
			tw := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
			for _, o := range f.Options {
				mark := ""
				if o.Value == f.Default {
					mark = "default"
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", o.Label, o.Value, mark)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
