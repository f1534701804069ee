package main

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// bundleDocument writes a ZIP archive containing one document's Markdown
// file and, when present, its image directory. Archive entries use
// forward-slash paths relative to the output directory, matching what the
// Markdown references.
func bundleDocument(zipPath, mdPath, imageDir string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	if err := addFile(zw, mdPath, filepath.Base(mdPath)); err != nil {
		zw.Close()
		return err
	}

	if info, err := os.Stat(imageDir); err == nil && info.IsDir() {
		base := filepath.Base(imageDir)
		err := filepath.WalkDir(imageDir, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(imageDir, p)
			if err != nil {
				return err
			}
			return addFile(zw, p, path.Join(base, filepath.ToSlash(rel)))
		})
		if err != nil {
			zw.Close()
			return err
		}
	}

	return zw.Close()
}

func addFile(zw *zip.Writer, diskPath, entryName string) error {
	src, err := os.Open(diskPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(entryName)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
