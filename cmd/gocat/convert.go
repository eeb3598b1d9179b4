package main

import (
	"fmt"
	"strings"

	"github.com/minios-linux/gocat/mofile"
	"github.com/minios-linux/gocat/pofile"
	"github.com/spf13/cobra"
)

func newTomoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tomo <file.po>",
		Short: "Compile a PO catalog to MO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTomo(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .mo path (default: same name with .mo extension)")

	return cmd
}

func runTomo(path, output string) error {
	pf, err := pofile.ReadFile(path)
	if err != nil {
		return err
	}

	dest := output
	if dest == "" {
		dest = replaceExt(path, ".mo")
	}

	mf := &mofile.MOFile{Catalog: pf.Catalog}
	if err := mf.SaveAs(dest); err != nil {
		return err
	}

	logSuccess("compiled %s -> %s", path, dest)
	return nil
}

func newTopoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "topo <file.mo>",
		Short: "Decompile an MO catalog to PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopo(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .po path (default: same name with .po extension)")

	return cmd
}

func runTopo(path, output string) error {
	mf, err := mofile.ReadFile(path)
	if err != nil {
		return err
	}

	dest := output
	if dest == "" {
		dest = replaceExt(path, ".po")
	}

	pf := &pofile.POFile{Catalog: mf.Catalog}
	if err := pf.SaveAs(dest); err != nil {
		return err
	}

	logSuccess("decompiled %s -> %s", path, dest)
	return nil
}

func replaceExt(path, ext string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return fmt.Sprintf("%s%s", path[:idx], ext)
	}
	return path + ext
}
