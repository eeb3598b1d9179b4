// Package pofile implements reading and writing of PO/POT files
// following the GNU gettext textual format, on top of the shared
// entry/catalog model in the gettext package.
package pofile

import (
	"fmt"
	"os"

	"github.com/minios-linux/gocat"
)

// POFile is a parsed or constructed PO/POT catalog.
type POFile struct {
	*gettext.Catalog
}

// NewFile returns an empty PO catalog with gettext's usual defaults
// (utf-8, wrap at 78 columns) and a blank header entry.
func NewFile() *POFile {
	return &POFile{Catalog: gettext.NewCatalog()}
}

// Save writes the catalog back to the path it was last read from or
// saved to. It fails if no such path is known.
func (f *POFile) Save() error {
	if f.FPath == "" {
		return fmt.Errorf("pofile: no path to save to; call SaveAs first")
	}
	return f.SaveAs(f.FPath)
}

// SaveAs writes the catalog to path and remembers it for a later bare
// Save.
func (f *POFile) SaveAs(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := f.WriteTo(out); err != nil {
		return err
	}
	f.FPath = path
	return nil
}
