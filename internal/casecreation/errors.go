package casecreation

import "fmt"

// CaseDataError wraps a create or update failure with the exception record
// it belongs to, so the failure can be traced back to the scanned
// submission. Store transport errors are never wrapped in this type.
type CaseDataError struct {
	RecordID string
	Err      error
}

func (e *CaseDataError) Error() string {
	return fmt.Sprintf("case creation failed for exception record %s: %v", e.RecordID, e.Err)
}

func (e *CaseDataError) Unwrap() error {
	return e.Err
}
