package report

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/extract"
)

func testAggregator() *Aggregator {
	logger := log.New(io.Discard, "", 0)
	return NewAggregator(extract.NewExtractor(logger), logger)
}

var statsHeader = []string{
	"Manufacturer Name", "Stock Observation %",
	"Affected Loose Units", "Affected Full Cases",
	"Loose (Repeat Batch)", "Cases (Repeat Batch)",
}

func draftFindingDoc(name, surveyID, company string) *document.MemoryDocument {
	page1 := "Draft Finding\n" +
		"Survey ID: " + surveyID + "\n" +
		"Requestor: " + company + "\n" +
		"Shop 2, West Delhi\n" +
		"Visited on 12 March 2024\n"
	page2 := "Summary of information gathered\n" +
		"The mail was received on 2 March 2024."

	return document.NewMemoryDocument(name,
		document.MemoryPage{Text: page1},
		document.MemoryPage{
			Text: page2,
			Tables: []document.Table{{
				statsHeader,
				{"Fresh Foods", "52.5%", "1,200", "45", "30", "12"},
			}},
		},
	)
}

func TestAggregatorProcess(t *testing.T) {
	agg := testAggregator()
	agg.Process(draftFindingDoc("Draft Report_KB1234.pdf", "KB1234", "Moon Beverages Limited"))

	tables, err := agg.Tables()
	require.NoError(t, err)
	require.Len(t, tables.BasicInfo, 1)
	require.Len(t, tables.ManufacturerStats, 1)

	info := tables.BasicInfo[0]
	assert.Equal(t, "Draft Report_KB1234.pdf", info.FileName)
	assert.Equal(t, "Moon Beverages Limited", info.CompanyName)
	assert.Equal(t, "KB1234", info.ProjectID)
	assert.Equal(t, "West Delhi", info.Location)
	assert.Equal(t, "12-03-2024", info.Date)
	assert.Equal(t, "02-03-2024", info.MailReceivedDate)

	stat := tables.ManufacturerStats[0]
	assert.Equal(t, "Fresh Foods", stat.ManufacturerName)
	assert.Equal(t, "KB1234", stat.ProjectID, "stat rows carry the parent document fields")
	assert.Equal(t, "West Delhi", stat.Location)
	require.NotNil(t, stat.AffectedLooseUnits)
	assert.Equal(t, 1200, *stat.AffectedLooseUnits)
}

func TestAggregatorDropsIrrelevantDocuments(t *testing.T) {
	agg := testAggregator()

	// gated by file name
	agg.Process(document.NewMemoryDocument("Summary_Report.pdf",
		document.MemoryPage{Text: "Draft Finding\nSurvey ID: KB1234"}))

	// passes the gate but yields neither a company nor statistics
	agg.Process(document.NewMemoryDocument("Draft Report_blank.pdf",
		document.MemoryPage{Text: "nothing recognizable on this page"}))

	_, err := agg.Tables()
	assert.True(t, errors.Is(err, ErrNoRecords), "expected ErrNoRecords, got %v", err)
}

func TestAggregatorBatchOrder(t *testing.T) {
	agg := testAggregator()
	docs := []document.Document{
		draftFindingDoc("Draft Report_KB1234.pdf", "KB1234", "Moon Beverages Limited"),
		draftFindingDoc("Draft Report_KB5678.pdf", "KB5678", "SLMG Beverages Private Limited"),
	}

	tables, err := agg.Aggregate(docs)
	require.NoError(t, err)
	require.Len(t, tables.BasicInfo, 2)
	assert.Equal(t, "KB1234", tables.BasicInfo[0].ProjectID)
	assert.Equal(t, "KB5678", tables.BasicInfo[1].ProjectID)
}
