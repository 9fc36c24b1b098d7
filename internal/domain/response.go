package domain

// CaseResponse is the outcome of a transform or validate step. Errors and
// warnings are ordered, caller-visible message lists; non-empty errors
// always supersede warnings for decision purposes.
type CaseResponse struct {
	Record   *CaseRecord
	Errors   []string
	Warnings []string
}

func (r CaseResponse) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r CaseResponse) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HandlerResponse reports the outcome of case-creation orchestration.
type HandlerResponse struct {
	State  string
	CaseID string
}

// Token bundles the three credentials forwarded to the store on every
// call. It is never persisted and never inspected beyond the user id.
type Token struct {
	UserAuthToken    string
	ServiceAuthToken string
	UserID           string
}

// ValidationStatus summarizes a message pair for the dry-run response.
type ValidationStatus string

const (
	ValidationStatusSuccess  ValidationStatus = "SUCCESS"
	ValidationStatusWarnings ValidationStatus = "WARNINGS"
	ValidationStatusErrors   ValidationStatus = "ERRORS"
)

// StatusOf derives the validation status from error and warning lists.
// Errors win over warnings.
func StatusOf(errors, warnings []string) ValidationStatus {
	if len(errors) > 0 {
		return ValidationStatusErrors
	}
	if len(warnings) > 0 {
		return ValidationStatusWarnings
	}
	return ValidationStatusSuccess
}
