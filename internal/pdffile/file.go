// Package pdffile adapts real PDF files to the document contract the
// extraction core works against: per-page plain text plus best-effort
// table grids recovered from positioned text.
package pdffile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
)

// DefaultMaxFileSize caps how large a PDF the batch will touch.
const DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

// File is a PDF-backed document handle. It keeps the underlying file
// open until Close is called.
type File struct {
	path   string
	name   string
	file   *os.File
	reader *pdf.Reader
}

// Open validates and opens a PDF for extraction.
func Open(path string, maxFileSize int64) (*File, error) {
	if err := checkFile(path, maxFileSize); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}

	return &File{
		path:   path,
		name:   filepath.Base(path),
		file:   f,
		reader: reader,
	}, nil
}

// checkFile performs the cheap gate checks before parsing anything.
func checkFile(path string, maxFileSize int64) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", fileInfo.Size(), maxFileSize)
	}
	return nil
}

// Close releases the underlying file handle.
func (f *File) Close() error {
	if f.file != nil {
		return f.file.Close()
	}
	return nil
}

// Path returns the full path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// FileName returns the base name of the PDF.
func (f *File) FileName() string {
	return f.name
}

// PageCount returns the number of pages.
func (f *File) PageCount() int {
	return f.reader.NumPage()
}

// PageText returns the text of a page with line structure preserved.
// It prefers the positioned row extraction; when that fails it falls
// back to the plain text stream.
func (f *File) PageText(pageNum int) (string, error) {
	if err := f.checkPage(pageNum); err != nil {
		return "", err
	}

	rows, err := f.pageRows(pageNum)
	if err != nil {
		page := f.reader.Page(pageNum)
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("extract text from page %d: %w", pageNum, perr)
		}
		return text, nil
	}

	lines := make([]string, len(rows))
	for i, cells := range rows {
		lines[i] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n"), nil
}

// PageTables recovers candidate table grids from a page's positioned
// text rows.
func (f *File) PageTables(pageNum int) ([]document.Table, error) {
	if err := f.checkPage(pageNum); err != nil {
		return nil, err
	}

	rows, err := f.pageRows(pageNum)
	if err != nil {
		return nil, fmt.Errorf("extract tables from page %d: %w", pageNum, err)
	}
	return tablesFromRows(rows), nil
}

func (f *File) checkPage(pageNum int) error {
	if pageNum < 1 || pageNum > f.reader.NumPage() {
		return fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, f.reader.NumPage())
	}
	return nil
}

// gap thresholds as multiples of the running font size: below the word
// gap, chunks are glued together; above the cell gap, a column boundary
// is assumed.
const (
	wordGapFactor = 0.3
	cellGapFactor = 2.5
)

// pageRows converts a page's positioned text into rows of cells. Text
// chunks on the same baseline are merged left to right; a wide
// horizontal gap starts a new cell.
func (f *File) pageRows(pageNum int) ([][]string, error) {
	page := f.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		texts := make([]pdf.Text, len(row.Content))
		copy(texts, row.Content)
		sort.Slice(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

		var cells []string
		var cur strings.Builder
		prevEnd := 0.0
		started := false

		for _, t := range texts {
			if t.S == "" {
				continue
			}
			if started {
				gap := t.X - prevEnd
				size := t.FontSize
				if size <= 0 {
					size = 12.0
				}
				switch {
				case gap > size*cellGapFactor:
					cells = appendCell(cells, &cur)
				case gap > size*wordGapFactor:
					cur.WriteByte(' ')
				}
			}
			cur.WriteString(t.S)
			prevEnd = t.X + t.W
			started = true
		}
		cells = appendCell(cells, &cur)

		if len(cells) > 0 {
			out = append(out, cells)
		}
	}
	return out, nil
}

func appendCell(cells []string, cur *strings.Builder) []string {
	if cur.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cur.String()))
		cur.Reset()
	}
	return cells
}

// tablesFromRows groups consecutive multi-cell rows into table grids.
// A single-cell row ends the current candidate; candidates need at
// least a header row and one data row to count.
func tablesFromRows(rows [][]string) []document.Table {
	const minTableRows = 2

	var tables []document.Table
	var current document.Table

	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, cells := range rows {
		if len(cells) >= 2 {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()

	return tables
}
