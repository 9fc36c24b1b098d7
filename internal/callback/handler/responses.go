package handler

import (
	"sscs-bulk-scan/internal/callback"
	"sscs-bulk-scan/internal/domain"
)

// TransformResponse is the success payload of the create-case endpoint.
type TransformResponse struct {
	State               string                      `json:"state,omitempty"`
	CaseID              string                      `json:"case_id,omitempty"`
	CaseCreationDetails CaseCreationDetailsResponse `json:"case_creation_details"`
	Warnings            []string                    `json:"warnings"`
}

type CaseCreationDetailsResponse struct {
	CaseTypeID string             `json:"case_type_id"`
	EventID    string             `json:"event_id"`
	CaseData   *domain.CaseRecord `json:"case_data"`
}

// FromTransformResult converts the domain result to the HTTP response.
func FromTransformResult(result *callback.TransformResult) *TransformResponse {
	return &TransformResponse{
		State:  result.State,
		CaseID: result.CaseID,
		CaseCreationDetails: CaseCreationDetailsResponse{
			CaseTypeID: result.CaseCreationDetails.CaseTypeID,
			EventID:    result.CaseCreationDetails.EventID,
			CaseData:   result.CaseCreationDetails.Record,
		},
		Warnings: emptyIfNil(result.Warnings),
	}
}

// ValidateResponse is the payload of the dry-run validation endpoint.
type ValidateResponse struct {
	Status   string   `json:"status"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// MessageListResponse rejects an exception record with caller-visible
// messages; never a bare exception trace.
type MessageListResponse struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CaseValidationResponse answers a live-case callback. The triggering
// event is blocked when errors are present.
type CaseValidationResponse struct {
	Data     *domain.CaseRecord `json:"data"`
	Errors   []string           `json:"errors"`
	Warnings []string           `json:"warnings"`
}

// emptyIfNil keeps message lists as [] rather than null on the wire.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
