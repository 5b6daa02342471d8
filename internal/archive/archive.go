// internal/archive/archive.go
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Build writes a deflate-compressed zip at zipPath containing every .pdf
// file found in dir, flat (no subdirectories), sorted by name. Any
// archive already at zipPath is replaced. An empty dir yields a valid
// empty archive.
func Build(zipPath, dir string) error {
	if err := os.Remove(zipPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove old archive: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	zw := zip.NewWriter(f)
	for _, p := range files {
		if err := addFile(zw, p); err != nil {
			_ = zw.Close()
			_ = f.Close()
			return fmt.Errorf("archive %s: %w", filepath.Base(p), err)
		}
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	// zip.Writer.Create compresses entries with deflate.
	dst, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
