// gocat is a thin Cobra CLI exercising the gettext catalog library:
// translation stats, template merge, and PO/MO conversion.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/minios-linux/gocat/config"
	"github.com/minios-linux/gocat/langmeta"
	"github.com/spf13/cobra"
)

var version = "dev"

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[0;33m"
	colorBlue   = "\033[0;34m"
	colorCyan   = "\033[0;36m"
	colorDim    = "\033[2m"
	colorBold   = "\033[1m"
)

// noColor disables ANSI output when set by --no-color or .gocat.yaml.
var noColor bool

func color(code string) string {
	if noColor {
		return ""
	}
	return code
}

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color(colorCyan)+"  → "+color(colorReset)+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color(colorGreen)+"  ✓ "+color(colorReset)+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color(colorYellow)+"  ⚠ "+color(colorReset)+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color(colorRed)+"  ✗ "+color(colorReset)+format+"\n", args...)
}

// progressBar renders a text progress bar: █████████░░░  75%
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)

	c := colorGreen
	if percent < 50 {
		c = colorRed
	} else if percent < 100 {
		c = colorYellow
	}

	return fmt.Sprintf("%s%s%s %3d%%", color(c), bar, color(colorReset), percent)
}

// sectionHeader prints a styled section header.
func sectionHeader(title string) {
	fmt.Fprintf(os.Stderr, "\n%s%s%s%s\n", color(colorBold), color(colorBlue), title, color(colorReset))
	fmt.Fprintln(os.Stderr, color(colorDim)+"  "+strings.Repeat("─", 58)+color(colorReset))
}

// keyVal prints a key-value pair with consistent alignment.
func keyVal(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s%-16s%s %s\n", color(colorDim), key, color(colorReset), value)
}

// langFlag returns the flag emoji for a language code, or empty if unknown.
func langFlag(lang string) string {
	return langmeta.Resolve(lang).Flag
}

func langColumnWidth(langs []string) int {
	width := 4
	for _, lang := range langs {
		if w := utf8.RuneCountInString(lang); w > width {
			width = w
		}
	}
	return width
}

func langCell(lang string, width int) string {
	return fmt.Sprintf("%s %-*s", langFlag(lang), width, lang)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var rootDir string
var cfg *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocat",
		Short: "Inspect and transform gettext PO/MO catalogs",
		Long: `gocat — a small command-line front end for the gocat gettext library.

Commands operate directly on .po and .mo catalog files:
  stats   show translation progress for one or more catalogs
  header  print or edit a catalog's header metadata
  merge   merge a catalog against a reference template (msgmerge-style)
  tomo    compile a PO catalog to MO
  topo    decompile an MO catalog to PO`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(rootDir)
			if err != nil {
				return fmt.Errorf("loading %s: %w", config.FileName, err)
			}
			cfg = loaded
			if cfg.NoColor {
				noColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", ".", "directory to look for .gocat.yaml in")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newStatsCmd(),
		newHeaderCmd(),
		newMergeCmd(),
		newTomoCmd(),
		newTopoCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gocat version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}
