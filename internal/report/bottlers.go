package report

import "strings"

// BottlerCode pairs a bottler's registered legal name with the short
// code used in tracker sheets.
type BottlerCode struct {
	FullName string `json:"name" mapstructure:"name"`
	Code     string `json:"code" mapstructure:"code"`
}

// BottlerCodeMap resolves company names to short codes. Entries are
// matched in declaration order.
type BottlerCodeMap []BottlerCode

// DefaultBottlerCodes returns a fresh copy of the known bottler table.
func DefaultBottlerCodes() BottlerCodeMap {
	return BottlerCodeMap{
		{FullName: "Moon Beverages Limited", Code: "Moon"},
		{FullName: "SLMG Beverages Private Limited", Code: "SLMG"},
		{FullName: "Enrich Agro Food Products Private Limited", Code: "Enrich"},
		{FullName: "Kandhari Beverages Limited", Code: "KBL"},
		{FullName: "Udaipur Beverages Limited", Code: "UBL"},
		{FullName: "Narmada Drinks Pvt Ltd", Code: "NDPL"},
		{FullName: "Ludhiana Beverages Private Limited", Code: "LBPL"},
		{FullName: "Kandhari Global Beverages Private Limited", Code: "KGB"},
		{FullName: "Superior Drinks Pvt. Ltd.", Code: "SDPL"},
		{FullName: "Hindustan Coca-Cola Beverages Pvt. Ltd.", Code: "HCCB"},
		{FullName: "Enrich Agro Food Products\nPrivate Limited", Code: "Enrich"},
		{FullName: "Enrich Agro Food Products Pvt. Ltd.", Code: "Enrich"},
	}
}

// Resolve returns the short code for a company name by case-insensitive
// substring containment, falling back to looking for the code itself
// inside the survey/project identifier. Empty result means unknown.
func (m BottlerCodeMap) Resolve(companyName, projectID string) string {
	name := strings.ToLower(strings.TrimSpace(companyName))
	if name != "" {
		for _, bc := range m {
			if strings.Contains(name, strings.ToLower(bc.FullName)) {
				return bc.Code
			}
		}
	}

	pid := strings.TrimSpace(projectID)
	if pid != "" {
		for _, bc := range m {
			if strings.Contains(pid, bc.Code) {
				return bc.Code
			}
		}
	}
	return ""
}
