package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestBundleDocument(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "report.md")
	if err := os.WriteFile(mdPath, []byte("# Report\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	imageDir := filepath.Join(dir, "report")
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(imageDir, "image_p1_1.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(dir, "report.zip")
	if err := bundleDocument(zipPath, mdPath, imageDir); err != nil {
		t.Fatalf("bundleDocument: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	want := []string{"report.md", "report/image_p1_1.png"}
	sort.Strings(want)
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBundleDocumentNoImages(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "plain.md")
	if err := os.WriteFile(mdPath, []byte("# Plain\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(dir, "plain.zip")
	if err := bundleDocument(zipPath, mdPath, filepath.Join(dir, "plain")); err != nil {
		t.Fatalf("bundleDocument: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "plain.md" {
		t.Errorf("unexpected entries in image-free archive: %v", zr.File)
	}
}
