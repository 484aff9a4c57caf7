package extract

import (
	"strconv"
	"strings"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
)

// superscriptDigits are the Unicode superscript forms of 0-9. Their
// appearance inside a numeric cell marks a footnoted figure.
const superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"

// ExtractManufacturerTables parses the manufacturer-statistics tables on
// one page into records. Tables only ever appear on summary pages, so
// pages without a located summary section yield nothing. A table
// qualifies when any header cell contains "manufacturer"; rows whose
// first cell is a total line are skipped and rows without a usable
// manufacturer name are dropped.
func ExtractManufacturerTables(pageText string, tables []document.Table) []ManufacturerRecord {
	found, _ := LocateSummarySection(pageText)
	if !found {
		return nil
	}

	var records []ManufacturerRecord
	for _, table := range tables {
		if len(table) == 0 {
			continue
		}

		header := make([]string, len(table[0]))
		for i, cell := range table[0] {
			header[i] = strings.TrimSpace(cell)
		}
		if !isManufacturerHeader(header) {
			continue
		}

		for _, row := range table[1:] {
			if rec, ok := parseManufacturerRow(row, header); ok {
				records = append(records, rec)
			}
		}
	}
	return records
}

func isManufacturerHeader(header []string) bool {
	for _, cell := range header {
		if strings.Contains(strings.ToLower(cell), "manufacturer") {
			return true
		}
	}
	return false
}

func parseManufacturerRow(row []string, header []string) (ManufacturerRecord, bool) {
	if len(row) == 0 || allEmpty(row) {
		return ManufacturerRecord{}, false
	}
	if strings.Contains(strings.ToLower(row[0]), "total") {
		return ManufacturerRecord{}, false
	}

	rec := ManufacturerRecord{ManufacturerName: strings.TrimSpace(row[0])}

	// first cell carrying a percent sign wins; later ones are ignored
	for _, cell := range row {
		if !strings.Contains(cell, "%") {
			continue
		}
		if v, err := strconv.ParseFloat(keepDigitsAndDot(cell), 64); err == nil {
			rec.StockObservationPercentage = &v
		}
		break
	}

	for i, cell := range row {
		if cell == "" {
			continue
		}

		head := ""
		if i < len(header) {
			head = header[i]
		}
		clean, hasExp := extractBaseNumber(cell, head)
		if hasExp {
			rec.HasExponential = true
		}

		value, err := strconv.Atoi(strings.ReplaceAll(clean, ",", ""))
		if err != nil {
			// parse failure on one cell never aborts the row
			continue
		}

		// column routing by header keywords; repeat-batch combinations
		// take precedence over the plain forms
		lower := strings.ToLower(head)
		switch {
		case strings.Contains(lower, "loose") && strings.Contains(lower, "repeat"):
			rec.AffectedLooseRepeatBatch = intPtr(value)
		case strings.Contains(lower, "case") && strings.Contains(lower, "repeat"):
			rec.AffectedCasesRepeatBatch = intPtr(value)
		case strings.Contains(lower, "loose"):
			rec.AffectedLooseUnits = intPtr(value)
		case strings.Contains(lower, "case"):
			rec.AffectedFullCases = intPtr(value)
		}
	}

	name := strings.ToLower(rec.ManufacturerName)
	if rec.ManufacturerName == "" || strings.Contains(name, "total") || strings.Contains(name, "none") {
		return ManufacturerRecord{}, false
	}
	return rec, true
}

// extractBaseNumber pulls the base digits out of a cell that may carry a
// footnote/exponent marker: a superscript digit or a "**" pair,
// whichever comes first, truncates the value to everything before it.
// Repeat-batch columns additionally treat a plain trailing 6 as a
// corrupted superscript artifact; that flags the row without truncating.
func extractBaseNumber(text, header string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "0", false
	}

	hasExp := false
	runes := []rune(text)
	expStart := -1

	for i, r := range runes {
		if strings.ContainsRune(superscriptDigits, r) {
			expStart = i
			hasExp = true
			break
		}
	}
	if expStart == -1 {
		for i := 0; i+1 < len(runes); i++ {
			if runes[i] == '*' && runes[i+1] == '*' {
				expStart = i
				hasExp = true
				break
			}
		}
	}
	if !hasExp && strings.Contains(strings.ToLower(header), "repeat") && strings.HasSuffix(text, "6") {
		hasExp = true
	}

	if expStart != -1 {
		runes = runes[:expStart]
	}

	var b strings.Builder
	for _, r := range runes {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "0", hasExp
	}
	return b.String(), hasExp
}

func keepDigitsAndDot(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func intPtr(v int) *int { return &v }
