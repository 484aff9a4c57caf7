package report

import (
	"errors"
	"log"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/extract"
)

// Sheet labels the serialization layer uses for the four tables.
const (
	BasicInfoSheet         = "Basic Info"
	ManufacturerStatsSheet = "Manufacturer Stats"
	InjuredTrackerSheet    = "Injured - Tracker 2022+2023"
	SourceReportSheet      = "Source - Report Summary"
)

// MailReceivedHeader is the Basic Info column header carrying the
// summary date.
const MailReceivedHeader = "Mail Received - Date"

// ErrNoRecords reports that no document in the batch produced a usable
// record. It signals the caller to treat the whole batch as a no-op
// rather than a partial success.
var ErrNoRecords = errors.New("no matching documents produced any records")

// BasicInfoRow is one line of the per-document table.
type BasicInfoRow struct {
	FileName         string `json:"file_name"`
	CompanyName      string `json:"company_name"`
	ProjectID        string `json:"project_id"`
	Location         string `json:"location"`
	Date             string `json:"date"`
	MailReceivedDate string `json:"mail_received_date"`
}

// ManufacturerStatsRow is one manufacturer record joined to the fields
// of its owning document.
type ManufacturerStatsRow struct {
	FileName    string `json:"file_name"`
	CompanyName string `json:"company_name"`
	ProjectID   string `json:"project_id"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	extract.ManufacturerRecord
}

// Tables holds the two relational tables handed off to the
// serialization layer.
type Tables struct {
	BasicInfo         []BasicInfoRow         `json:"basic_info"`
	ManufacturerStats []ManufacturerStatsRow `json:"manufacturer_stats"`
}

// Aggregator accumulates extraction results across a batch. Documents
// are processed strictly one at a time in the order they are fed in;
// one bad document never aborts the batch.
type Aggregator struct {
	extractor *extract.Extractor
	logger    *log.Logger
	tables    Tables
}

// NewAggregator creates an aggregator running the given extractor.
func NewAggregator(extractor *extract.Extractor, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{extractor: extractor, logger: logger}
}

// Process extracts one document and folds its record into the tables.
// Documents with neither manufacturer statistics nor a company name are
// dropped as not relevant, which is not an error.
func (a *Aggregator) Process(doc document.Document) {
	a.logger.Printf("Processing: %s", doc.FileName())
	rec := a.extractor.Extract(doc)

	if len(rec.ManufacturerStatistics) == 0 && rec.CompanyName == "" {
		return
	}

	a.tables.BasicInfo = append(a.tables.BasicInfo, BasicInfoRow{
		FileName:         rec.FileName,
		CompanyName:      rec.CompanyName,
		ProjectID:        rec.ProjectID,
		Location:         rec.Location,
		Date:             rec.ReportDate,
		MailReceivedDate: rec.SummaryDate,
	})

	// copy-down join: every stat row carries its parent document fields
	for _, stat := range rec.ManufacturerStatistics {
		a.tables.ManufacturerStats = append(a.tables.ManufacturerStats, ManufacturerStatsRow{
			FileName:           rec.FileName,
			CompanyName:        rec.CompanyName,
			ProjectID:          rec.ProjectID,
			Location:           rec.Location,
			Date:               rec.ReportDate,
			ManufacturerRecord: stat,
		})
	}
}

// Tables returns the accumulated tables, or ErrNoRecords when the whole
// batch came up empty.
func (a *Aggregator) Tables() (*Tables, error) {
	if len(a.tables.BasicInfo) == 0 && len(a.tables.ManufacturerStats) == 0 {
		return nil, ErrNoRecords
	}
	return &a.tables, nil
}

// Aggregate runs the whole batch in one call.
func (a *Aggregator) Aggregate(docs []document.Document) (*Tables, error) {
	for _, doc := range docs {
		a.Process(doc)
	}
	return a.Tables()
}
