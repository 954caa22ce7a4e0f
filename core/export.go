package core

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// exportPath resolves rel below outDir, refusing anything that climbs out.
func exportPath(outDir, rel string) (string, error) {
	clean := filepath.Clean("/" + strings.Trim(rel, "/"))
	for _, part := range strings.Split(rel, "/") {
		if part == ".." {
			return "", fmt.Errorf("export %q: path escapes output directory", rel)
		}
	}
	return filepath.Join(outDir, clean), nil
}

func ReadExportedPage(outDir, route string) ([]byte, bool) {
	dir, err := exportPath(outDir, route)
	if err != nil {
		return nil, false
	}

	htmlPath := filepath.Join(dir, "index.html")
	if _, err := os.Stat(htmlPath); err != nil {
		return nil, false
	}

	content, err := os.ReadFile(htmlPath)
	if err != nil {
		return nil, false
	}

	return content, true
}

// ExportPage writes route/index.html and a gzip copy next to it.
func ExportPage(outDir, route string, html []byte) error {
	dir, err := exportPath(outDir, route)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return err
	}

	return writeGzip(htmlPath+".gz", html)
}

func ExportFile(outDir, rel string, data []byte) error {
	target, err := exportPath(outDir, rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0644)
}

// CountExportedPages counts index.html files below outDir.
func CountExportedPages(outDir string) int {
	count := 0
	filepath.WalkDir(outDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == "index.html" {
			count++
		}
		return nil
	})
	return count
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
