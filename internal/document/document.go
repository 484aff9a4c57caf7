package document

// Table is one extracted table grid in row-major order. Consumers treat
// row 0 as the header row. A cell is the empty string when the source
// cell was blank or could not be read.
type Table [][]string

// Document is the contract the extraction core works against: a stable
// file name plus ordered access to per-page text and table grids. Page
// numbers are 1-based.
type Document interface {
	// FileName returns the base name of the source file. It is used both
	// for the inclusion-filter check and in several field heuristics.
	FileName() string

	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the plain text of a page. An empty string means no
	// text could be extracted from that page.
	PageText(pageNum int) (string, error)

	// PageTables returns the table grids detected on a page, in reading
	// order.
	PageTables(pageNum int) ([]Table, error)
}
