package handler

import (
	"strings"

	"sscs-bulk-scan/internal/callback"
	"sscs-bulk-scan/internal/domain"
	dErrors "sscs-bulk-scan/pkg/domain-errors"
)

// ExceptionRecordRequest is the body of the transform and validate
// endpoints: one scanned exception record plus submission flags.
type ExceptionRecordRequest struct {
	ID                 string     `json:"id"`
	ExceptionRecordID  string     `json:"exception_record_id"`
	IsAutomatedProcess bool       `json:"is_automated_process"`
	IgnoreWarnings     bool       `json:"ignore_warnings"`
	FormType           string     `json:"form_type"`
	CaseReference      string     `json:"case_reference"`
	OcrDataFields      []OcrField `json:"ocr_data_fields"`
}

// OcrField is one raw name/value pair read off the scanned form.
type OcrField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Validate normalizes the request. New submitters populate
// exception_record_id; older ones only set id.
func (r *ExceptionRecordRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	r.ExceptionRecordID = strings.TrimSpace(r.ExceptionRecordID)
	if r.ID == "" && r.ExceptionRecordID == "" {
		return dErrors.New(dErrors.CodeValidation, "exception record id is required")
	}
	return nil
}

// Record converts the request to the domain exception record.
func (r *ExceptionRecordRequest) Record() domain.ExceptionRecord {
	fields := make(map[string]string, len(r.OcrDataFields))
	for _, f := range r.OcrDataFields {
		fields[f.Name] = f.Value
	}
	return domain.ExceptionRecord{
		ID:                 r.ID,
		ExceptionRecordID:  r.ExceptionRecordID,
		IsAutomatedProcess: r.IsAutomatedProcess,
		FormType:           r.FormType,
		CaseReference:      r.CaseReference,
		Fields:             fields,
	}
}

// CaseCallbackRequest is the body of the live-case validation endpoint.
type CaseCallbackRequest struct {
	EventID     string `json:"event_id"`
	CaseDetails struct {
		ID       string             `json:"id"`
		CaseData *domain.CaseRecord `json:"case_data"`
	} `json:"case_details"`
}

// Validate checks the envelope carries a case to validate.
func (r *CaseCallbackRequest) Validate() error {
	if r.CaseDetails.CaseData == nil {
		return dErrors.New(dErrors.CodeValidation, "case_details.case_data is required")
	}
	return nil
}

// LiveCallback converts the request to the domain callback envelope.
func (r *CaseCallbackRequest) LiveCallback() callback.LiveCallback {
	return callback.LiveCallback{
		Event:  r.EventID,
		CaseID: r.CaseDetails.ID,
		Record: r.CaseDetails.CaseData,
	}
}
