package document

import "fmt"

// MemoryPage holds the extracted content of one page.
type MemoryPage struct {
	Text   string
	Tables []Table
}

// MemoryDocument is an in-memory Document implementation used by tests
// and by adapters that already hold extracted content.
type MemoryDocument struct {
	Name  string
	Pages []MemoryPage
}

// NewMemoryDocument creates a document from pre-extracted pages.
func NewMemoryDocument(name string, pages ...MemoryPage) *MemoryDocument {
	return &MemoryDocument{Name: name, Pages: pages}
}

// FileName returns the document's file name.
func (d *MemoryDocument) FileName() string {
	return d.Name
}

// PageCount returns the number of pages.
func (d *MemoryDocument) PageCount() int {
	return len(d.Pages)
}

// PageText returns the text of the given 1-based page.
func (d *MemoryDocument) PageText(pageNum int) (string, error) {
	if pageNum < 1 || pageNum > len(d.Pages) {
		return "", fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, len(d.Pages))
	}
	return d.Pages[pageNum-1].Text, nil
}

// PageTables returns the table grids of the given 1-based page.
func (d *MemoryDocument) PageTables(pageNum int) ([]Table, error) {
	if pageNum < 1 || pageNum > len(d.Pages) {
		return nil, fmt.Errorf("invalid page number %d (document has %d pages)", pageNum, len(d.Pages))
	}
	return d.Pages[pageNum-1].Tables, nil
}
