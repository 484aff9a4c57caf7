package extract

import (
	"log"
	"regexp"
	"strings"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/document"
)

// DefaultFilenameKeywords gate which files are worth extracting at all.
// A file whose name contains neither keyword yields an all-empty record.
var DefaultFilenameKeywords = []string{"draft report", "draft findings"}

// summaryDatePageLimit bounds how deep the summary-date scan goes.
const summaryDatePageLimit = 3

const draftFindingMarker = "Draft Finding"

// reportDateREs is the ordered cascade for the report date on page 1;
// the first pattern that matches anywhere in the text wins.
var reportDateREs = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}\s+(?:` + monthNames + `)\s+\d{4})`),
	regexp.MustCompile(`(\d{2}(?:\s+|-|/)?(?:` + monthNames + `|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)(?:\s+|-|/)\d{4})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
	regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})`),
}

var (
	surveyIDRE = regexp.MustCompile(`(?:Survey ID:?\s*)?([A-Z]{2}\d{3,4})`)

	// multi-word Delhi forms first so "West Delhi" doesn't collapse to
	// "Delhi"
	cityRE = regexp.MustCompile(`((?:West|East|North|South|Central)\s+Delhi|Delhi|Mumbai|Kolkata|Bangalore|Hyderabad)`)
)

var (
	locationStates = []string{"Pradesh", "UP", "Bihar", "Maharashtra", "Karnataka"}
	locationCities = []string{
		"West Delhi", "East Delhi", "North Delhi", "South Delhi", "Central Delhi",
		"Delhi", "Mumbai", "Kolkata", "Bangalore", "Hyderabad",
	}

	// lines that are never location lines
	headerNoiseTokens = []string{"draft", "finding", "survey", "id:", "requestor:", "date:", "confidential"}
	// lines that look like a company letterhead
	letterheadTokens = []string{"ltd", "limited", "@", "email", "tel", "phone"}
)

// legacyProjectIDREs feed the legacy project-ID heuristic. A candidate
// is accepted only when it also appears verbatim in the file name.
var legacyProjectIDREs = []*regexp.Regexp{
	regexp.MustCompile(`(?:Project|ID|No|Number):\s*([A-Z]+\d+(?:\.[A-Z]\d*)?)`),
	regexp.MustCompile(`(?:Project|ID|No|Number)\s+([A-Z]+\d+(?:\.[A-Z]\d*)?)`),
	regexp.MustCompile(`([A-Z]{2,5}\d{2,5}(?:\.[A-Z]\d*)?)`),
}

var legacyLocationREs = []*regexp.Regexp{
	regexp.MustCompile(`(?:Project|ID)[^,]*,\s*((?:West|East|North|South|Central)\s+Delhi|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`(?:[A-Z]+\d+)[^,]*,\s*((?:West|East|North|South|Central)\s+Delhi|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`Report_((?:West|East|North|South|Central)_Delhi|[A-Z][a-z]+(?:_[A-Z][a-z]+)*)`),
	regexp.MustCompile(`((?:West|East|North|South|Central)\s+Delhi|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// Extractor pulls document-level fields out of draft report documents.
// It never returns an error: extraction misses leave fields empty and
// read failures are logged per document, preserving partial results.
type Extractor struct {
	keywords []string
	logger   *log.Logger
}

// NewExtractor creates an extractor with the default filename gate.
func NewExtractor(logger *log.Logger) *Extractor {
	return NewExtractorWithKeywords(DefaultFilenameKeywords, logger)
}

// NewExtractorWithKeywords creates an extractor with a custom filename
// gate, used when the inclusion keywords come from configuration. An
// empty list means the configuration carried no override and the
// defaults apply.
func NewExtractorWithKeywords(keywords []string, logger *log.Logger) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultFilenameKeywords
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{keywords: keywords, logger: logger}
}

// Extract builds the DocumentRecord for one document. Files failing the
// name gate come back with only FileName set; everything else flows
// through the layout-specific field heuristics plus the per-page
// manufacturer table scan.
func (e *Extractor) Extract(doc document.Document) DocumentRecord {
	rec := DocumentRecord{FileName: doc.FileName()}

	if !e.matchesFilename(rec.FileName) {
		e.logger.Printf("Skipping %s: filename does not contain %s", rec.FileName, strings.Join(e.keywords, " or "))
		return rec
	}
	if doc.PageCount() == 0 {
		return rec
	}

	text, err := doc.PageText(1)
	if err != nil {
		e.logger.Printf("Error processing %s: %v", rec.FileName, err)
		return rec
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Printf("Warning: no text could be extracted from %s", rec.FileName)
		return rec
	}

	rec.SummaryDate = e.summaryDate(doc)

	if isDraftFinding(text) {
		extractDraftFinding(text, &rec)
	} else {
		extractLegacy(text, rec.FileName, &rec)
	}

	e.collectManufacturerStatistics(doc, &rec)
	return rec
}

func (e *Extractor) matchesFilename(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// summaryDate scans up to the first three pages for a summary date and
// stops at the first success.
func (e *Extractor) summaryDate(doc document.Document) string {
	pages := doc.PageCount()
	if pages > summaryDatePageLimit {
		pages = summaryDatePageLimit
	}
	for p := 1; p <= pages; p++ {
		text, err := doc.PageText(p)
		if err != nil {
			e.logger.Printf("Error reading page %d of %s: %v", p, doc.FileName(), err)
			continue
		}
		if text == "" {
			continue
		}
		if raw := ExtractSummaryDate(text); raw != "" {
			if date := NormalizeDate(raw); date != "" {
				return date
			}
		}
	}
	return ""
}

// collectManufacturerStatistics runs the table extractor over every
// page and appends the results in page order.
func (e *Extractor) collectManufacturerStatistics(doc document.Document, rec *DocumentRecord) {
	for p := 1; p <= doc.PageCount(); p++ {
		text, err := doc.PageText(p)
		if err != nil {
			e.logger.Printf("Error reading page %d of %s: %v", p, doc.FileName(), err)
			continue
		}
		tables, err := doc.PageTables(p)
		if err != nil {
			e.logger.Printf("Error reading tables on page %d of %s: %v", p, doc.FileName(), err)
			continue
		}
		rec.ManufacturerStatistics = append(rec.ManufacturerStatistics, ExtractManufacturerTables(text, tables)...)
	}
}

func isDraftFinding(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, draftFindingMarker) {
			return true
		}
	}
	return false
}

// extractDraftFinding applies the "Draft Finding" layout heuristics to
// the page-1 text.
func extractDraftFinding(text string, rec *DocumentRecord) {
	lines := strings.Split(text, "\n")

	// survey ID: first line mentioning the label, with the ID taken as
	// two uppercase letters followed by 3-4 digits
	for _, line := range lines {
		if !strings.Contains(line, "Survey ID") {
			continue
		}
		if m := surveyIDRE.FindStringSubmatch(line); m != nil {
			rec.SurveyID = m[1]
			rec.ProjectID = m[1]
		}
		break
	}

	// requestor doubles as the company name
	for i, line := range lines {
		if !strings.Contains(line, "Requestor") {
			continue
		}
		if i+1 < len(lines) {
			requestor := line
			if idx := strings.Index(requestor, "Requestor:"); idx >= 0 {
				requestor = requestor[idx+len("Requestor:"):]
			}
			rec.Requestor = strings.TrimSpace(requestor)
			rec.CompanyName = rec.Requestor
		}
		break
	}

	rec.Location = draftFindingLocation(lines)
	rec.ReportDate = firstReportDate(text)
}

// draftFindingLocation tries state-suffix lines first, then known city
// names, then falls back to re-applying both checks over the header
// block with noise and letterhead lines removed.
func draftFindingLocation(lines []string) string {
	for _, line := range lines {
		if loc, ok := stateLocation(line); ok {
			return loc
		}
		if containsAny(line, locationCities) {
			if m := cityRE.FindStringSubmatch(line); m != nil {
				return m[1]
			}
		}
	}

	header := lines
	if len(header) > 20 {
		header = header[:20]
	}
	for _, line := range header {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || containsAnyFold(trimmed, headerNoiseTokens) {
			continue
		}
		if containsAnyFold(trimmed, letterheadTokens) {
			continue
		}
		if m := cityRE.FindStringSubmatch(trimmed); m != nil {
			return m[1]
		}
		if loc, ok := stateLocation(trimmed); ok {
			return loc
		}
	}
	return ""
}

// stateLocation takes everything before a known state name, without the
// trailing comma ("Ghaziabad, Uttar Pradesh" -> "Ghaziabad, Uttar").
func stateLocation(line string) (string, bool) {
	for _, state := range locationStates {
		idx := strings.Index(line, state)
		if idx < 0 {
			continue
		}
		loc := strings.TrimSpace(line[:idx])
		loc = strings.TrimSpace(strings.TrimSuffix(loc, ","))
		return loc, true
	}
	return "", false
}

// extractLegacy applies the pre-"Draft Finding" layout heuristics.
func extractLegacy(text, fileName string, rec *DocumentRecord) {
	rec.CompanyName = legacyCompanyName(text)
	rec.ProjectID = legacyProjectID(text, fileName)
	rec.Location = legacyLocation(text)
	rec.ReportDate = firstReportDate(text)
}

// legacyCompanyName joins the up to three non-empty lines immediately
// above the first "Project Stellar" line, dropping boilerplate lines.
func legacyCompanyName(text string) string {
	lines := strings.Split(text, "\n")

	anchor := -1
	for i, line := range lines {
		if strings.Contains(line, "Project Stellar") {
			anchor = i
			break
		}
	}
	if anchor <= 0 {
		return ""
	}

	start := anchor - 3
	if start < 0 {
		start = 0
	}
	var kept []string
	for _, line := range lines[start:anchor] {
		line = strings.TrimSpace(line)
		if line == "" || containsAnyFold(line, []string{"confidential", "draft report", "report"}) {
			continue
		}
		kept = append(kept, line)
	}
	return cleanCompanyName(strings.Join(kept, "\n"))
}

// cleanCompanyName collapses surrounding whitespace per line while
// preserving the multi-line form.
func cleanCompanyName(name string) string {
	if name == "" {
		return name
	}
	var kept []string
	for _, line := range strings.Split(name, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// legacyProjectID accepts the first regex candidate that also appears
// verbatim in the file name.
func legacyProjectID(text, fileName string) string {
	for _, re := range legacyProjectIDREs {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if strings.Contains(fileName, m[1]) {
				return m[1]
			}
		}
	}
	return ""
}

func legacyLocation(text string) string {
	for _, re := range legacyLocationREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(strings.ReplaceAll(m[1], "_", " "))
		}
	}
	return ""
}

// firstReportDate runs the report-date cascade over the full page text.
func firstReportDate(text string) string {
	for _, re := range reportDateREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return NormalizeDate(m[1])
		}
	}
	return ""
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, tokens []string) bool {
	lower := strings.ToLower(s)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
