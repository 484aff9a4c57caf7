package extract

// ManufacturerRecord is one parsed row of a manufacturer-statistics
// table. Numeric fields are pointers because zero is a real value
// distinct from "nothing was found in that column".
type ManufacturerRecord struct {
	ManufacturerName           string   `json:"manufacturer_name"`
	StockObservationPercentage *float64 `json:"stock_observation_percentage,omitempty"`
	AffectedLooseUnits         *int     `json:"affected_loose_units,omitempty"`
	AffectedFullCases          *int     `json:"affected_full_cases,omitempty"`
	AffectedLooseRepeatBatch   *int     `json:"affected_loose_repeat_batch,omitempty"`
	AffectedCasesRepeatBatch   *int     `json:"affected_cases_repeat_batch,omitempty"`

	// HasExponential is set when any numeric cell in the row carried a
	// footnote/exponent marker. The stored value then needs manual
	// verification against the source document.
	HasExponential bool `json:"has_exponential"`
}

// DocumentRecord is the per-document extraction result. String fields
// are empty when the corresponding pattern cascade found nothing; dates
// are canonical DD-MM-YYYY strings.
type DocumentRecord struct {
	FileName               string               `json:"file_name"`
	CompanyName            string               `json:"company_name,omitempty"`
	ProjectID              string               `json:"project_id,omitempty"`
	Location               string               `json:"location,omitempty"`
	ReportDate             string               `json:"report_date,omitempty"`
	SurveyID               string               `json:"survey_id,omitempty"`
	Requestor              string               `json:"requestor,omitempty"`
	SummaryDate            string               `json:"summary_date,omitempty"`
	ManufacturerStatistics []ManufacturerRecord `json:"manufacturer_statistics"`
}
