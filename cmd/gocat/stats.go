package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>...",
		Short: "Show translation progress for one or more catalogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

func runStats(paths []string) error {
	width := langColumnWidth(langsFromPaths(paths))

	sectionHeader("Catalog stats")
	fmt.Fprintf(os.Stderr, "  %s%-*s %-22s %6s %6s %6s %6s%s\n",
		color(colorDim), width+3, "Lang", "Progress", "Total", "Done", "Fuzzy", "Left", color(colorReset))

	for _, path := range paths {
		cat, _, err := openCatalog(path)
		if err != nil {
			logError("%s: %v", path, err)
			continue
		}

		lang := cat.Metadata["Language"]
		if lang == "" {
			lang = path
		}

		total := len(cat.TranslatedEntries()) + len(cat.UntranslatedEntries()) + len(cat.FuzzyEntries())
		translated := len(cat.TranslatedEntries())
		fuzzy := len(cat.FuzzyEntries())
		untranslated := len(cat.UntranslatedEntries())
		percent := cat.PercentTranslated()

		fmt.Fprintf(os.Stderr, "  %s %s %6d %6d %6d %6d\n",
			langCell(lang, width), progressBar(percent, 16), total, translated, fuzzy, untranslated)
	}

	return nil
}

func langsFromPaths(paths []string) []string {
	langs := make([]string, 0, len(paths))
	for _, p := range paths {
		cat, _, err := openCatalog(p)
		if err != nil {
			langs = append(langs, p)
			continue
		}
		if lang := cat.Metadata["Language"]; lang != "" {
			langs = append(langs, lang)
		} else {
			langs = append(langs, p)
		}
	}
	return langs
}
