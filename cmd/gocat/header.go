package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHeaderCmd() *cobra.Command {
	var setPairs []string

	cmd := &cobra.Command{
		Use:   "header <file>",
		Short: "Print or edit a catalog's header metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args[0], setPairs)
		},
	}

	cmd.Flags().StringArrayVar(&setPairs, "set", nil, "set a header field (key=value), repeatable")

	return cmd
}

func runHeader(path string, setPairs []string) error {
	cat, _, err := openCatalog(path)
	if err != nil {
		return err
	}

	if len(setPairs) == 0 {
		for _, kv := range cat.OrderedMetadata() {
			keyVal(kv[0], kv[1])
		}
		return nil
	}

	for _, pair := range setPairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: want key=value", pair)
		}
		cat.SetMetadata(key, value)
	}

	if err := saveCatalog(cat, path); err != nil {
		return err
	}
	logSuccess("updated %d header field(s) in %s", len(setPairs), path)
	return nil
}
