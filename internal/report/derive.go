package report

import (
	"strconv"
	"strings"
)

// InjuredTrackerRow is one line of the injured-bottler tracker view,
// derived from a BasicInfoRow.
type InjuredTrackerRow struct {
	SrNo               int    `json:"sr_no"`
	SurveyNo           string `json:"survey_no"`
	InjuredBottler     string `json:"injured_bottler"`
	Location           string `json:"location"`
	MailReceivedDate   string `json:"mail_received_date"`
	ReportReceivedDate string `json:"report_received_date"`
	InjuredMailSubject string `json:"injured_mail_subject"`
	AuditPlannedBy     string `json:"audit_planned_by"`
}

// SourceReportRow is one line of the source-report summary view,
// derived from a ManufacturerStatsRow. TotalRepeated is a display
// string: a literal dash when the repeat counts sum to zero.
type SourceReportRow struct {
	No                         int      `json:"no"`
	SurveyNo                   string   `json:"survey_no"`
	Injured                    string   `json:"injured"`
	Location                   string   `json:"location"`
	BottlerName                string   `json:"bottler_name"`
	ReportDate                 string   `json:"report_date"`
	StockObservationPercentage *float64 `json:"stock_observation_percentage,omitempty"`
	LooseUnits                 *int     `json:"loose_units,omitempty"`
	FullCases                  *int     `json:"full_cases,omitempty"`
	RepeatedLooseBatch         *int     `json:"repeated_loose_batch,omitempty"`
	RepeatedCasesBatch         *int     `json:"repeated_cases_batch,omitempty"`
	TotalRepeated              string   `json:"total_repeated"`
}

// DeriveReports builds the two downstream report views from the flat
// tables. It is the single derivation implementation: the fresh
// extraction path and the workbook read-back path both feed it.
func DeriveReports(t *Tables, codes BottlerCodeMap) ([]InjuredTrackerRow, []SourceReportRow) {
	tracker := make([]InjuredTrackerRow, 0, len(t.BasicInfo))
	for i, row := range t.BasicInfo {
		survey := strings.TrimSpace(row.ProjectID)
		location := strings.TrimSpace(row.Location)
		bottler := codes.Resolve(row.CompanyName, survey)

		subject := ""
		if bottler != "" && location != "" && survey != "" {
			subject = bottler + "-" + location + "-" + survey
		}

		plannedBy := "EY"
		if strings.HasPrefix(survey, "SR") {
			plannedBy = "BDO"
		}

		tracker = append(tracker, InjuredTrackerRow{
			SrNo:               i + 1,
			SurveyNo:           survey,
			InjuredBottler:     bottler,
			Location:           location,
			MailReceivedDate:   row.MailReceivedDate,
			ReportReceivedDate: row.Date,
			InjuredMailSubject: subject,
			AuditPlannedBy:     plannedBy,
		})
	}

	// join back to the owning document: first basic row per project wins
	companyByProject := make(map[string]string, len(t.BasicInfo))
	for _, row := range t.BasicInfo {
		pid := strings.TrimSpace(row.ProjectID)
		if _, seen := companyByProject[pid]; !seen {
			companyByProject[pid] = row.CompanyName
		}
	}

	source := make([]SourceReportRow, 0, len(t.ManufacturerStats))
	projectCount := make(map[string]int)
	for _, row := range t.ManufacturerStats {
		pid := strings.TrimSpace(row.ProjectID)
		projectCount[pid]++

		total := 0
		if row.AffectedLooseRepeatBatch != nil {
			total += *row.AffectedLooseRepeatBatch
		}
		if row.AffectedCasesRepeatBatch != nil {
			total += *row.AffectedCasesRepeatBatch
		}
		totalDisplay := "-"
		if total != 0 {
			totalDisplay = strconv.Itoa(total)
		}

		injured := ""
		if company, ok := companyByProject[pid]; ok {
			injured = codes.Resolve(company, pid)
		}

		source = append(source, SourceReportRow{
			No:                         projectCount[pid],
			SurveyNo:                   pid,
			Injured:                    injured,
			Location:                   row.Location,
			BottlerName:                strings.TrimSpace(row.ManufacturerName),
			ReportDate:                 row.Date,
			StockObservationPercentage: row.StockObservationPercentage,
			LooseUnits:                 row.AffectedLooseUnits,
			FullCases:                  row.AffectedFullCases,
			RepeatedLooseBatch:         row.AffectedLooseRepeatBatch,
			RepeatedCasesBatch:         row.AffectedCasesRepeatBatch,
			TotalRepeated:              totalDisplay,
		})
	}

	return tracker, source
}
