package pdffile

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindPDFs walks a directory tree and returns every PDF path in walk
// order. Walk order is significant downstream: the source-report
// sequence numbers depend on document encounter order.
func FindPDFs(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", dir, err)
	}
	return paths, nil
}
