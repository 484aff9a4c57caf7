// Package workbook reconstructs the flat extraction tables from a
// previously produced workbook so the report views can be derived
// without re-reading the source PDFs. It is a read-only adapter; the
// derivation itself lives in the report package.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/report"
)

// ReadTables loads the "Basic Info" and "Manufacturer Stats" sheets of
// an extraction workbook back into the flat tables. Columns are matched
// by header name, so column order in the file does not matter.
func ReadTables(path string) (*report.Tables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	basic, err := readBasicInfo(f)
	if err != nil {
		return nil, err
	}
	stats, err := readManufacturerStats(f)
	if err != nil {
		return nil, err
	}

	if len(basic) == 0 && len(stats) == 0 {
		return nil, report.ErrNoRecords
	}
	return &report.Tables{BasicInfo: basic, ManufacturerStats: stats}, nil
}

func readBasicInfo(f *excelize.File) ([]report.BasicInfoRow, error) {
	rows, err := f.GetRows(report.BasicInfoSheet)
	if err != nil {
		return nil, fmt.Errorf("read %q sheet: %w", report.BasicInfoSheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := headerIndex(rows[0])
	out := make([]report.BasicInfoRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := report.BasicInfoRow{
			FileName:         cell(row, cols, "file_name"),
			CompanyName:      cell(row, cols, "company_name"),
			ProjectID:        cell(row, cols, "project_id"),
			Location:         cell(row, cols, "location"),
			Date:             cell(row, cols, "date"),
			MailReceivedDate: cell(row, cols, report.MailReceivedHeader),
		}
		if r.FileName == "" && r.ProjectID == "" && r.CompanyName == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func readManufacturerStats(f *excelize.File) ([]report.ManufacturerStatsRow, error) {
	rows, err := f.GetRows(report.ManufacturerStatsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %q sheet: %w", report.ManufacturerStatsSheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := headerIndex(rows[0])
	out := make([]report.ManufacturerStatsRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := report.ManufacturerStatsRow{
			FileName:    cell(row, cols, "file_name"),
			CompanyName: cell(row, cols, "company_name"),
			ProjectID:   cell(row, cols, "project_id"),
			Location:    cell(row, cols, "location"),
			Date:        cell(row, cols, "date"),
		}
		r.ManufacturerName = cell(row, cols, "manufacturer_name")
		if r.FileName == "" && r.ManufacturerName == "" {
			continue
		}

		r.StockObservationPercentage = floatCell(row, cols, "stock_observation_percentage")
		r.AffectedLooseUnits = intCell(row, cols, "affected_loose_units")
		r.AffectedFullCases = intCell(row, cols, "affected_full_cases")
		r.AffectedLooseRepeatBatch = intCell(row, cols, "affected_loose_repeat_batch")
		r.AffectedCasesRepeatBatch = intCell(row, cols, "affected_cases_repeat_batch")
		r.HasExponential = boolCell(row, cols, "has_exponential")

		out = append(out, r)
	}
	return out, nil
}

// headerIndex maps lower-cased header names to column positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[strings.ToLower(name)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func floatCell(row []string, cols map[string]int, name string) *float64 {
	s := cell(row, cols, name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intCell(row []string, cols map[string]int, name string) *int {
	s := cell(row, cols, name)
	if s == "" {
		return nil
	}
	// sheets written from floats render integers as "150" or "150.0"
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(v)
	return &n
}

// boolCell accepts both the native bool form and the legacy
// "Yes - Check Values"/"No" cell text.
func boolCell(row []string, cols map[string]int, name string) bool {
	s := strings.ToLower(cell(row, cols, name))
	return s == "true" || strings.HasPrefix(s, "yes")
}
