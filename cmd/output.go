package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/brogergvhs/novelfetch/internal/chapters"
	"github.com/brogergvhs/novelfetch/internal/providers"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printNovels(w io.Writer, items []providers.NovelItem) error {
	if flagJSON {
		return printJSON(w, items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No novels found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPATH")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, it.Name, it.Path)
	}
	return tw.Flush()
}

func printChapters(w io.Writer, list []chapters.Chapter) error {
	if flagJSON {
		items := make([]providers.ChapterItem, len(list))
		for i, c := range list {
			items[i] = c.ChapterItem
		}
		return printJSON(w, items)
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No chapters found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tLABEL\tNAME\tPATH")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.Index, c.Label, c.Name, c.Path)
	}
	return tw.Flush()
}

func printNovel(w io.Writer, n *providers.SourceNovel) error {
	if flagJSON {
		return printJSON(w, n)
	}

	fmt.Fprintf(w, "%s\n\n", n.Name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("Path", n.Path)
	row("Author", n.Author)
	row("Status", n.Status)
	row("Genres", n.Genres)
	row("Cover", n.Cover)
	fmt.Fprintf(tw, "Pages:\t%d\n", n.TotalPages)
	fmt.Fprintf(tw, "Chapters:\t%d on first page\n", len(n.Chapters))
	if err := tw.Flush(); err != nil {
		return err
	}

	if n.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", n.Summary)
	}
	return nil
}
