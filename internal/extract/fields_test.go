package extract

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

const draftFindingPage = "Confidential\n" +
	"Draft Finding\n" +
	"Survey ID: KB1234\n" +
	"Requestor: Acme Bottlers\n" +
	"Shop 14, Main Market, West Delhi\n" +
	"Date of visit: 12 March 2024\n"

func TestExtractDraftFindingLayout(t *testing.T) {
	doc := document.NewMemoryDocument("Draft Report_KB1234.pdf",
		document.MemoryPage{Text: draftFindingPage},
		document.MemoryPage{Text: "Summary of information gathered\n" +
			"The mail was received on 2nd April 2024."},
	)

	extractor := NewExtractor(testLogger())
	rec := extractor.Extract(doc)

	if rec.FileName != "Draft Report_KB1234.pdf" {
		t.Errorf("FileName = %q", rec.FileName)
	}
	if rec.SurveyID != "KB1234" {
		t.Errorf("SurveyID = %q, want KB1234", rec.SurveyID)
	}
	if rec.ProjectID != "KB1234" {
		t.Errorf("ProjectID = %q, want KB1234", rec.ProjectID)
	}
	if rec.Requestor != "Acme Bottlers" {
		t.Errorf("Requestor = %q, want Acme Bottlers", rec.Requestor)
	}
	if rec.CompanyName != "Acme Bottlers" {
		t.Errorf("CompanyName = %q, want Acme Bottlers", rec.CompanyName)
	}
	if rec.Location != "West Delhi" {
		t.Errorf("Location = %q, want West Delhi", rec.Location)
	}
	if rec.ReportDate != "12-03-2024" {
		t.Errorf("ReportDate = %q, want 12-03-2024", rec.ReportDate)
	}
	if rec.SummaryDate != "02-04-2024" {
		t.Errorf("SummaryDate = %q, want 02-04-2024", rec.SummaryDate)
	}
}

func TestExtractFilenameGate(t *testing.T) {
	doc := document.NewMemoryDocument("Summary_Report.pdf",
		document.MemoryPage{Text: draftFindingPage},
	)

	extractor := NewExtractor(testLogger())
	rec := extractor.Extract(doc)

	if rec.FileName != "Summary_Report.pdf" {
		t.Errorf("FileName = %q", rec.FileName)
	}
	if rec.SurveyID != "" || rec.CompanyName != "" || rec.Location != "" || rec.ReportDate != "" {
		t.Errorf("gated file should yield an empty record, got %+v", rec)
	}
}

func TestExtractFilenameGateCaseInsensitive(t *testing.T) {
	extractor := NewExtractor(testLogger())

	for _, name := range []string{"DRAFT REPORT_1.pdf", "Draft Findings KB99.pdf", "draft report.pdf"} {
		if !extractor.matchesFilename(name) {
			t.Errorf("matchesFilename(%q) = false, want true", name)
		}
	}
	if extractor.matchesFilename("Final Report.pdf") {
		t.Error("matchesFilename(Final Report.pdf) = true, want false")
	}
}

func TestExtractEmptyKeywordsFallsBackToDefaults(t *testing.T) {
	for _, keywords := range [][]string{nil, {}} {
		extractor := NewExtractorWithKeywords(keywords, testLogger())

		if !extractor.matchesFilename("Draft Report_KB1234.pdf") {
			t.Errorf("keywords=%v: default keyword did not match", keywords)
		}

		doc := document.NewMemoryDocument("Draft Report_KB1234.pdf",
			document.MemoryPage{Text: draftFindingPage},
		)
		rec := extractor.Extract(doc)
		if rec.SurveyID != "KB1234" {
			t.Errorf("keywords=%v: document was gated out, got %+v", keywords, rec)
		}
	}
}

func TestExtractCustomKeywords(t *testing.T) {
	extractor := NewExtractorWithKeywords([]string{"survey report"}, testLogger())

	if !extractor.matchesFilename("Survey Report_AB123.pdf") {
		t.Error("custom keyword did not match")
	}
	if extractor.matchesFilename("Draft Report_AB123.pdf") {
		t.Error("default keyword should not match with custom list")
	}
}

func TestExtractLegacyLayout(t *testing.T) {
	page := "Confidential\n" +
		"Moon Beverages Limited\n" +
		"Project Stellar\n" +
		"Project MB104, Ghaziabad\n" +
		"Report dated 5 June 2023\n"

	doc := document.NewMemoryDocument("Draft Report_MB104.pdf",
		document.MemoryPage{Text: page},
	)

	extractor := NewExtractor(testLogger())
	rec := extractor.Extract(doc)

	if rec.CompanyName != "Moon Beverages Limited" {
		t.Errorf("CompanyName = %q, want Moon Beverages Limited", rec.CompanyName)
	}
	if rec.ProjectID != "MB104" {
		t.Errorf("ProjectID = %q, want MB104", rec.ProjectID)
	}
	if rec.Location != "Ghaziabad" {
		t.Errorf("Location = %q, want Ghaziabad", rec.Location)
	}
	if rec.ReportDate != "05-06-2023" {
		t.Errorf("ReportDate = %q, want 05-06-2023", rec.ReportDate)
	}
	if rec.SurveyID != "" {
		t.Errorf("SurveyID = %q, want empty for legacy layout", rec.SurveyID)
	}
}

func TestLegacyProjectIDRequiresFilenameMatch(t *testing.T) {
	text := "Project MB104, Ghaziabad\nAlso mentions XY999 somewhere."

	if got := legacyProjectID(text, "Draft Report_MB104.pdf"); got != "MB104" {
		t.Errorf("legacyProjectID = %q, want MB104", got)
	}
	if got := legacyProjectID(text, "Draft Report_other.pdf"); got != "" {
		t.Errorf("legacyProjectID = %q, want empty when no candidate is in the file name", got)
	}
}

func TestDraftFindingLocation(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "state suffix wins",
			lines: []string{"Draft Finding", "Ghaziabad, Uttar Pradesh"},
			want:  "Ghaziabad, Uttar",
		},
		{
			name:  "multi word delhi keeps the prefix",
			lines: []string{"Draft Finding", "Shop 4, West Delhi"},
			want:  "West Delhi",
		},
		{
			name:  "header fallback skips letterhead",
			lines: []string{"Acme Surveys Ltd", "info@acme.example", "Mumbai"},
			want:  "Mumbai",
		},
		{
			name:  "nothing recognizable",
			lines: []string{"Draft Finding", "no places here"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := draftFindingLocation(tt.lines); got != tt.want {
				t.Errorf("draftFindingLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	doc := document.NewMemoryDocument("Draft Report_empty.pdf")

	extractor := NewExtractor(testLogger())
	rec := extractor.Extract(doc)

	if rec.FileName != "Draft Report_empty.pdf" {
		t.Errorf("FileName = %q", rec.FileName)
	}
	if rec.CompanyName != "" || len(rec.ManufacturerStatistics) != 0 {
		t.Errorf("empty document should yield an empty record, got %+v", rec)
	}
}

func TestExtractCollectsTablesAcrossPages(t *testing.T) {
	table := document.Table{
		manufacturerHeader,
		{"Moon Beverages Limited", "52.5%", "1,200", "45", "", ""},
	}

	doc := document.NewMemoryDocument("Draft Report_KB1234.pdf",
		document.MemoryPage{Text: draftFindingPage},
		document.MemoryPage{Text: summaryPageText, Tables: []document.Table{table}},
		document.MemoryPage{Text: summaryPageText, Tables: []document.Table{table}},
	)

	extractor := NewExtractor(testLogger())
	rec := extractor.Extract(doc)

	if len(rec.ManufacturerStatistics) != 2 {
		t.Fatalf("expected 2 manufacturer records across pages, got %d", len(rec.ManufacturerStatistics))
	}
	if !strings.Contains(rec.ManufacturerStatistics[0].ManufacturerName, "Moon") {
		t.Errorf("unexpected first record: %+v", rec.ManufacturerStatistics[0])
	}
}
