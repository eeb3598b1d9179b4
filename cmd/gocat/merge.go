package main

import (
	"github.com/minios-linux/gocat/merge"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <target> <reference>",
		Short: "Merge a translated catalog against a reference template",
		Long: `merge updates a translated catalog with entries from a freshly
extracted reference template: matched entries keep their translation,
reference-only entries are added untranslated, and target-only entries
become obsolete. This is the gocat equivalent of msgmerge.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the merged catalog here instead of overwriting <target>")

	return cmd
}

func runMerge(targetPath, referencePath, output string) error {
	target, _, err := openCatalog(targetPath)
	if err != nil {
		return err
	}
	reference, _, err := openCatalog(referencePath)
	if err != nil {
		return err
	}

	merged := merge.Merge(target, reference)

	destPath := output
	if destPath == "" {
		destPath = targetPath
	}

	if err := saveCatalog(merged, destPath); err != nil {
		return err
	}

	logSuccess("merged %s into %s (%d%% translated)", referencePath, destPath, merged.PercentTranslated())
	return nil
}
