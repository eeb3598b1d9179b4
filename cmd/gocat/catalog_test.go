package main

import (
	"path/filepath"
	"testing"
)

func TestOpenCatalogRejectsUnknownExtension(t *testing.T) {
	if _, _, err := openCatalog("messages.txt"); err == nil {
		t.Fatal("expected error for unrecognized extension")
	}
}

func TestSaveAndOpenCatalogRoundTripPO(t *testing.T) {
	cfg = nil
	dir := t.TempDir()
	path := filepath.Join(dir, "ru.po")

	cat, _, err := openCatalog(filepath.Join("testdata", "sample.po"))
	if err != nil {
		t.Fatalf("openCatalog: %v", err)
	}

	if err := saveCatalog(cat, path); err != nil {
		t.Fatalf("saveCatalog: %v", err)
	}

	again, kind, err := openCatalog(path)
	if err != nil {
		t.Fatalf("openCatalog(round trip): %v", err)
	}
	if kind != "PO" {
		t.Fatalf("kind = %q, want PO", kind)
	}
	if again.Metadata["Language"] != cat.Metadata["Language"] {
		t.Fatalf("Language = %q, want %q", again.Metadata["Language"], cat.Metadata["Language"])
	}
}
