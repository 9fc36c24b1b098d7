// Package casecode derives the classification codes used for downstream
// routing and reporting. Codes are a pure function of the benefit type.
package casecode

import "fmt"

// benefitCodes maps a benefit type to its routing benefit code.
var benefitCodes = map[string]string{
	"UC":                  "001",
	"PIP":                 "002",
	"attendanceAllowance": "023",
	"DLA":                 "037",
	"ESA":                 "051",
	"carersAllowance":     "070",
	"JSA":                 "073",
}

// IssueCode is the default issue code for scanned appeals.
const IssueCode = "DD"

// MappingError reports a benefit type with no benefit code mapping.
// Callers decide whether the failure is fatal: it aborts case creation but
// is swallowed when stamping an already-created case.
type MappingError struct {
	BenefitType string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("benefit type %q has no benefit code mapping", e.BenefitType)
}

// BenefitCode resolves the benefit code for a benefit type.
func BenefitCode(benefitType string) (string, error) {
	code, ok := benefitCodes[benefitType]
	if !ok {
		return "", &MappingError{BenefitType: benefitType}
	}
	return code, nil
}

// CaseCode is the benefit code and issue code concatenated with no
// separator. Empty when either part is missing.
func CaseCode(benefitCode, issueCode string) string {
	if benefitCode == "" || issueCode == "" {
		return ""
	}
	return benefitCode + issueCode
}
