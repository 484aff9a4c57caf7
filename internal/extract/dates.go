package extract

import (
	"regexp"
	"strings"
	"time"
)

// CanonicalDateLayout is the one date form every output table carries.
// Dates stay strings end to end to avoid locale ambiguity downstream.
const CanonicalDateLayout = "02-01-2006"

// monthNumbers maps the first three letters of a month name to its
// two-digit number. Full names and three-letter abbreviations both
// resolve through the same prefix.
var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var (
	// day, month name, year separated by spaces, dashes or slashes
	// ("2 april 2025", "02-Apr-2025").
	monthNameDateRE = regexp.MustCompile(`(\d{1,2})[\s/-]+([a-zA-Z]+)[\s/-]+(\d{4})`)

	canonicalDateRE = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// fallbackDateLayouts are the last-resort numeric forms, tried in order
// with day-first interpretation.
var fallbackDateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
}

// NormalizeDate converts any recognized date representation to the
// canonical DD-MM-YYYY string. It returns "" on empty or unparseable
// input; callers treat "" as "no date found", never as an error.
func NormalizeDate(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if m := monthNameDateRE.FindStringSubmatch(s); m != nil {
		day := m[1]
		if len(day) == 1 {
			day = "0" + day
		}
		name := m[2]
		if len(name) > 3 {
			name = name[:3]
		}
		if month, ok := monthNumbers[name]; ok {
			return day + "-" + month + "-" + m[3]
		}
	}

	if canonicalDateRE.MatchString(s) {
		return s
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(CanonicalDateLayout)
		}
	}

	return ""
}
