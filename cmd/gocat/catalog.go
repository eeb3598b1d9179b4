package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minios-linux/gocat"
	"github.com/minios-linux/gocat/mofile"
	"github.com/minios-linux/gocat/pofile"
)

// openCatalog reads a .po or .mo file by extension and returns its
// shared catalog plus a human-readable kind label for log messages.
func openCatalog(path string) (*gettext.Catalog, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mo":
		f, err := mofile.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return f.Catalog, "MO", nil
	case ".po", ".pot":
		f, err := pofile.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return f.Catalog, "PO", nil
	default:
		return nil, "", fmt.Errorf("%s: unrecognized extension, want .po, .pot, or .mo", path)
	}
}

// saveCatalog writes cat to path in the format its extension implies,
// carrying over the CLI's wrap width and duplicate-checking defaults.
func saveCatalog(cat *gettext.Catalog, path string) error {
	if cfg != nil {
		if cfg.WrapWidth > 0 {
			cat.WrapWidth = cfg.WrapWidth
		}
		cat.CheckForDuplicates = cfg.CheckForDuplicates
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mo":
		f := &mofile.MOFile{Catalog: cat}
		return f.SaveAs(path)
	case ".po", ".pot":
		f := &pofile.POFile{Catalog: cat}
		return f.SaveAs(path)
	default:
		return fmt.Errorf("%s: unrecognized extension, want .po, .pot, or .mo", path)
	}
}
