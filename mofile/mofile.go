// Package mofile implements reading and writing of compiled MO
// catalogs following the GNU gettext binary format, on top of the
// shared entry/catalog model in the gettext package.
package mofile

import (
	"fmt"
	"os"

	"github.com/minios-linux/gocat"
)

// MOFile is a parsed or constructed MO catalog.
type MOFile struct {
	*gettext.Catalog
}

// NewFile returns an empty MO catalog with gettext's usual defaults.
func NewFile() *MOFile {
	return &MOFile{Catalog: gettext.NewCatalog()}
}

// Save writes the catalog back to the path it was last read from or
// saved to. It fails if no such path is known.
func (f *MOFile) Save() error {
	if f.FPath == "" {
		return fmt.Errorf("mofile: no path to save to; call SaveAs first")
	}
	return f.SaveAs(f.FPath)
}

// SaveAs compiles the catalog to MO bytes and writes them to path,
// remembering it for a later bare Save.
func (f *MOFile) SaveAs(path string) error {
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
