package callback

import "strings"

// InvalidExceptionRecordError rejects an exception record with the
// caller-visible messages explaining why. It covers both hard errors and
// warnings escalated for automated submissions.
type InvalidExceptionRecordError struct {
	Messages []string
}

func (e *InvalidExceptionRecordError) Error() string {
	return "invalid exception record: " + strings.Join(e.Messages, ". ")
}
