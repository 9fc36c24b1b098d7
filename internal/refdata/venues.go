package refdata

import "strings"

// VenueEntry maps an outward postcode area to hearing venues. PIP appeals
// can route to a different venue than other benefits in the same area.
type VenueEntry struct {
	Default string
	PIP     string
}

// VenueLookup resolves the processing venue for a postcode.
type VenueLookup struct {
	byArea map[string]VenueEntry
}

// NewVenueLookup builds a lookup over an injected venue table keyed by
// outward postcode area ("TS", "B", "G").
func NewVenueLookup(table map[string]VenueEntry) *VenueLookup {
	return &VenueLookup{byArea: table}
}

// VenueForPostcode resolves the venue for a postcode and benefit type.
// Empty when the postcode area is not in the table.
func (l *VenueLookup) VenueForPostcode(postcode, benefitType string) string {
	entry, ok := l.byArea[postcodeArea(postcode)]
	if !ok {
		return ""
	}
	if benefitType == "PIP" && entry.PIP != "" {
		return entry.PIP
	}
	return entry.Default
}

// postcodeArea extracts the leading letters of the outward code.
func postcodeArea(postcode string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(postcode))
	end := 0
	for end < len(trimmed) && trimmed[end] >= 'A' && trimmed[end] <= 'Z' {
		end++
	}
	return trimmed[:end]
}

// DefaultVenueTable is the built-in venue table. Deployments replace it
// with the full published lookup.
func DefaultVenueTable() map[string]VenueEntry {
	return map[string]VenueEntry{
		"TS": {Default: "Middlesbrough", PIP: "Middlesbrough"},
		"CV": {Default: "Coventry", PIP: "Coventry (CMCB)"},
		"G":  {Default: "Glasgow"},
		"SW": {Default: "Sutton", PIP: "Sutton (SDS)"},
		"B":  {Default: "Birmingham"},
	}
}
