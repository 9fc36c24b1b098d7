// Package refdata exposes the read-only reference lookups the rule
// evaluator depends on: DWP office routing, hearing venues and postcode
// validity. Tables are injected at process start and shared across
// requests without synchronization.
package refdata

import "strings"

// OfficeMapping ties a DWP issuing office to its routing code and the
// regional centre that handles it.
type OfficeMapping struct {
	Code           string
	Office         string
	RegionalCentre string
}

// OfficeLookup answers office questions from a static per-benefit table.
type OfficeLookup struct {
	byBenefit map[string][]OfficeMapping
}

// NewOfficeLookup builds a lookup over an injected office table.
func NewOfficeLookup(table map[string][]OfficeMapping) *OfficeLookup {
	return &OfficeLookup{byBenefit: table}
}

// MappingByOffice finds the mapping entry for an issuing office under a
// benefit type. Office names on scanned forms carry inconsistent casing
// and whitespace, so matching is normalized.
func (l *OfficeLookup) MappingByOffice(benefitType, office string) (OfficeMapping, bool) {
	want := normalizeOffice(office)
	for _, m := range l.byBenefit[benefitType] {
		if normalizeOffice(m.Office) == want || normalizeOffice(m.Code) == want {
			return m, true
		}
	}
	return OfficeMapping{}, false
}

// RegionalCentre resolves the DWP regional centre for a benefit type and
// issuing office. Empty when the office is unknown.
func (l *OfficeLookup) RegionalCentre(benefitType, office string) string {
	m, ok := l.MappingByOffice(benefitType, office)
	if !ok {
		return ""
	}
	return m.RegionalCentre
}

func normalizeOffice(office string) string {
	return strings.ToLower(strings.TrimSpace(office))
}

// DefaultOfficeTable is the built-in office table. Deployments replace it
// with the full published mapping.
func DefaultOfficeTable() map[string][]OfficeMapping {
	return map[string][]OfficeMapping{
		"PIP": {
			{Code: "1", Office: "1", RegionalCentre: "Newcastle"},
			{Code: "2", Office: "2", RegionalCentre: "Glasgow"},
			{Code: "3", Office: "3", RegionalCentre: "Springburn"},
			{Code: "4", Office: "4", RegionalCentre: "Wolverhampton"},
			{Code: "5", Office: "5", RegionalCentre: "Springburn"},
		},
		"ESA": {
			{Code: "Balham DRT", Office: "Balham DRT", RegionalCentre: "Balham"},
			{Code: "Birkenhead LM DRT", Office: "Birkenhead LM DRT", RegionalCentre: "Birkenhead"},
			{Code: "Sheffield DRT", Office: "Sheffield DRT", RegionalCentre: "Sheffield"},
		},
		"UC": {
			{Code: "Universal Credit", Office: "Universal Credit", RegionalCentre: "Universal Credit"},
		},
		"DLA": {
			{Code: "Disability Benefit Centre 4", Office: "Disability Benefit Centre 4", RegionalCentre: "DLA Child/Adult"},
		},
	}
}
