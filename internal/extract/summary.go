package extract

import (
	"regexp"
	"strings"
)

// SummaryHeader marks the start of the summary block inside a report.
const SummaryHeader = "Summary of information gathered"

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

var (
	// "the request/mail was received ... on 2 April 2025"
	receivedDateRE = regexp.MustCompile(`(?i)(?:request|mail)\s+was\s+received.*?on\s+(\d{1,2}\s+(?:` + monthNames + `)\s+\d{4})`)

	// fallbacks tried in order when no "received" phrasing is present
	summaryDateREs = []*regexp.Regexp{
		regexp.MustCompile(`(?:received|conducted).*?on\s+(\d{1,2}\s+(?:` + monthNames + `)\s+\d{4})`),
		regexp.MustCompile(`(\d{1,2}\s+(?:` + monthNames + `)\s+\d{4})`),
	}

	// same chain again but tolerating an ordinal suffix on the day
	// ("2nd April 2025")
	ordinalDateREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:request|mail)\s+was\s+received.*?on\s+(\d{1,2})(?:st|nd|rd|th)\s+(?:` + monthNames + `)\s+\d{4}`),
		regexp.MustCompile(`(?i)(?:received|conducted).*?on\s+(\d{1,2})(?:st|nd|rd|th)\s+(?:` + monthNames + `)\s+\d{4}`),
		regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)\s+(?:` + monthNames + `)\s+\d{4}`),
	}

	ordinalSuffixRE = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)`)
	bareDateRE      = regexp.MustCompile(`(\d{1,2}\s+(?:` + monthNames + `)\s+\d{4})`)
)

// LocateSummarySection scans the text lines for the summary block. The
// block starts at the first line containing SummaryHeader and ends just
// before the next line containing "Annexure" or "Exhibit", or at end of
// text when no such marker follows. Matching is substring-based, not
// anchored; a stray occurrence anywhere on a line triggers detection.
func LocateSummarySection(text string) (bool, string) {
	lines := strings.Split(text, "\n")
	start, end := -1, -1

	for i, line := range lines {
		switch {
		case strings.Contains(line, SummaryHeader):
			start = i
		case start != -1 && (strings.Contains(line, "Annexure") || strings.Contains(line, "Exhibit")):
			end = i
		}
		if end != -1 {
			break
		}
	}

	if start == -1 {
		return false, ""
	}
	if end == -1 {
		end = len(lines)
	}
	return true, strings.Join(lines[start:end], "\n")
}

// ExtractSummaryDate finds the date a request or mail was received
// inside the summary block of the given page text. It returns the raw
// matched date substring, not yet normalized, or "" when nothing
// matches. Callers pipe the result through NormalizeDate.
func ExtractSummaryDate(text string) string {
	section, ok := summaryBlock(text)
	if !ok {
		return ""
	}

	if m := receivedDateRE.FindStringSubmatch(section); m != nil {
		return m[1]
	}

	for _, re := range summaryDateREs {
		if m := re.FindStringSubmatch(section); m != nil {
			return m[1]
		}
	}

	for _, re := range ordinalDateREs {
		m := re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		date := ordinalSuffixRE.ReplaceAllString(m[0], "$1")
		// the "received on" context may still be attached; cut it down to
		// the date itself
		if strings.Contains(date, "received") || strings.Contains(date, "conducted") {
			if d := bareDateRE.FindStringSubmatch(date); d != nil {
				date = d[1]
			}
		}
		return date
	}

	return ""
}

// summaryBlock re-locates the summary section for date extraction. Its
// boundary rule is a blank line or end of text, which is deliberately
// not the Annexure/Exhibit rule LocateSummarySection uses; the two call
// sites each depend on their own boundary and must not be unified.
func summaryBlock(text string) (string, bool) {
	idx := indexFold(text, SummaryHeader)
	if idx < 0 {
		return "", false
	}
	rest := text[idx+len(SummaryHeader):]
	rest = strings.TrimLeft(rest, ": \t\r\n")
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}
