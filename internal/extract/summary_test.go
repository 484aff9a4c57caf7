package extract

import (
	"strings"
	"testing"
)

func TestLocateSummarySection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFound bool
		wantHas   string
		wantNot   string
	}{
		{
			name: "section ends at Annexure",
			text: "Intro line\n" +
				"Summary of information gathered\n" +
				"The mail was received on 2 April 2025\n" +
				"Annexure 1\n" +
				"annexure body",
			wantFound: true,
			wantHas:   "received on 2 April 2025",
			wantNot:   "annexure body",
		},
		{
			name: "section ends at Exhibit",
			text: "Summary of information gathered\n" +
				"summary body\n" +
				"Exhibit A\n" +
				"exhibit body",
			wantFound: true,
			wantHas:   "summary body",
			wantNot:   "exhibit body",
		},
		{
			name: "no end marker runs to end of text",
			text: "Summary of information gathered\n" +
				"first line\n" +
				"last line",
			wantFound: true,
			wantHas:   "last line",
		},
		{
			name:      "no header",
			text:      "just a page\nwith no summary",
			wantFound: false,
		},
		{
			name: "later header occurrence resets the start",
			text: "Summary of information gathered\n" +
				"stale block\n" +
				"Summary of information gathered (contd)\n" +
				"fresh block\n" +
				"Annexure",
			wantFound: true,
			wantHas:   "fresh block",
			wantNot:   "stale block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, section := LocateSummarySection(tt.text)
			if found != tt.wantFound {
				t.Fatalf("LocateSummarySection() found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if tt.wantHas != "" && !strings.Contains(section, tt.wantHas) {
				t.Errorf("section missing %q:\n%s", tt.wantHas, section)
			}
			if tt.wantNot != "" && strings.Contains(section, tt.wantNot) {
				t.Errorf("section should not contain %q:\n%s", tt.wantNot, section)
			}
		})
	}
}

func TestExtractSummaryDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "mail was received",
			text: "Summary of information gathered:\n" +
				"The mail was received from the requestor on 2 April 2025 regarding counterfeit stock.",
			want: "2 April 2025",
		},
		{
			name: "request was received",
			text: "Summary of information gathered\n" +
				"A request was received by the team on 15 March 2024.",
			want: "15 March 2024",
		},
		{
			name: "survey conducted fallback",
			text: "Summary of information gathered\n" +
				"The survey was conducted on 7 January 2023 at the outlet.",
			want: "7 January 2023",
		},
		{
			name: "bare date fallback",
			text: "Summary of information gathered\n" +
				"Observations dated 9 June 2022 follow below.",
			want: "9 June 2022",
		},
		{
			name: "ordinal suffix is stripped",
			text: "Summary of information gathered\n" +
				"The mail was received on 2nd April 2025.",
			want: "2 April 2025",
		},
		{
			name: "date after blank line is outside the block",
			text: "Summary of information gathered\n" +
				"No dates in the block itself.\n" +
				"\n" +
				"The mail was received on 2 April 2025.",
			want: "",
		},
		{
			name: "no summary header",
			text: "The mail was received on 2 April 2025.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSummaryDate(tt.text); got != tt.want {
				t.Errorf("ExtractSummaryDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSummaryDateNormalizes(t *testing.T) {
	text := "Summary of information gathered\n" +
		"The mail was received on 2nd April 2025."
	raw := ExtractSummaryDate(text)
	if got := NormalizeDate(raw); got != "02-04-2025" {
		t.Errorf("NormalizeDate(%q) = %q, want %q", raw, got, "02-04-2025")
	}
}
