package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"sscs-bulk-scan/internal/callback"
	"sscs-bulk-scan/internal/ccd"
	"sscs-bulk-scan/internal/domain"
)

type stubService struct {
	validateResult  domain.CaseResponse
	validateErr     error
	transformResult *callback.TransformResult
	transformErr    error
	presubmitResult *callback.PreSubmitResult
	presubmitErr    error

	lastRecord   domain.ExceptionRecord
	lastCallback callback.LiveCallback
}

func (s *stubService) Validate(_ context.Context, record domain.ExceptionRecord) (domain.CaseResponse, error) {
	s.lastRecord = record
	return s.validateResult, s.validateErr
}

func (s *stubService) Transform(_ context.Context, record domain.ExceptionRecord, _ bool, _ domain.Token) (*callback.TransformResult, error) {
	s.lastRecord = record
	return s.transformResult, s.transformErr
}

func (s *stubService) ValidateAndUpdate(_ context.Context, cb callback.LiveCallback, _ domain.Token) (*callback.PreSubmitResult, error) {
	s.lastCallback = cb
	return s.presubmitResult, s.presubmitErr
}

func newCallbackRouter(svc *stubService) http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(svc, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTransformSuccess(t *testing.T) {
	svc := &stubService{
		transformResult: &callback.TransformResult{
			State:  "ScannedRecordCaseCreated",
			CaseID: "1234567890",
			CaseCreationDetails: callback.CaseCreationDetails{
				CaseTypeID: "Benefit",
				EventID:    "validAppealCreated",
				Record:     &domain.CaseRecord{BenefitCode: "002"},
			},
		},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/transform-exception-record", map[string]any{
		"id": "rec-1",
		"ocr_data_fields": []map[string]string{
			{"name": "person1_nino", "value": "AB123456C"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp TransformResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.State != "ScannedRecordCaseCreated" || resp.CaseID != "1234567890" {
		t.Fatalf("unexpected state/case id: %q %q", resp.State, resp.CaseID)
	}
	if resp.CaseCreationDetails.CaseTypeID != "Benefit" {
		t.Fatalf("expected case type Benefit, got %q", resp.CaseCreationDetails.CaseTypeID)
	}
	if resp.Warnings == nil {
		t.Fatalf("expected warnings to serialize as [], not null")
	}
	if svc.lastRecord.Fields["person1_nino"] != "AB123456C" {
		t.Fatalf("expected ocr fields to reach the service, got %v", svc.lastRecord.Fields)
	}
}

func TestTransformRejectedRecord(t *testing.T) {
	svc := &stubService{
		transformErr: &callback.InvalidExceptionRecordError{Messages: []string{"mrn_date is in the future"}},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/transform-exception-record", map[string]any{"id": "rec-1"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp MessageListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "mrn_date is in the future" {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
}

func TestTransformUpstreamFailure(t *testing.T) {
	svc := &stubService{
		transformErr: &ccd.TransportError{Op: "create case", Status: 503},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/transform-exception-record", map[string]any{"id": "rec-1"})

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestTransformInternalError(t *testing.T) {
	svc := &stubService{transformErr: errors.New("boom")}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/transform-exception-record", map[string]any{"id": "rec-1"})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestTransformMissingRecordID(t *testing.T) {
	router := newCallbackRouter(&stubService{})

	rec := postJSON(t, router, "/transform-exception-record", map[string]any{"form_type": "SSCS1"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestValidateRecord(t *testing.T) {
	svc := &stubService{
		validateResult: domain.CaseResponse{Warnings: []string{"person1_dob is empty"}},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/validate-record", map[string]any{"exception_record_id": "rec-2"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp ValidateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "WARNINGS" {
		t.Fatalf("expected WARNINGS status, got %q", resp.Status)
	}
	if len(resp.Errors) != 0 || len(resp.Warnings) != 1 {
		t.Fatalf("unexpected message lists: %v %v", resp.Errors, resp.Warnings)
	}
	if svc.lastRecord.EffectiveID() != "rec-2" {
		t.Fatalf("expected exception_record_id to win, got %q", svc.lastRecord.EffectiveID())
	}
}

func TestValidateRecordErrors(t *testing.T) {
	svc := &stubService{
		validateResult: domain.CaseResponse{Errors: []string{"person1_nino is invalid"}},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/validate-record", map[string]any{"id": "rec-1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp ValidateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ERRORS" {
		t.Fatalf("expected ERRORS status, got %q", resp.Status)
	}
}

func TestValidateCase(t *testing.T) {
	svc := &stubService{
		presubmitResult: &callback.PreSubmitResult{
			Record: &domain.CaseRecord{CreatedInGapsFrom: "readyToList"},
		},
	}
	router := newCallbackRouter(svc)

	rec := postJSON(t, router, "/validate-case", map[string]any{
		"event_id": "appealCreated",
		"case_details": map[string]any{
			"id":        "1234567890",
			"case_data": map[string]any{"interlocReviewState": "reviewByJudge"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp CaseValidationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil || resp.Data.CreatedInGapsFrom != "readyToList" {
		t.Fatalf("expected stamped case data in response, got %+v", resp.Data)
	}
	if svc.lastCallback.Event != "appealCreated" || svc.lastCallback.CaseID != "1234567890" {
		t.Fatalf("unexpected callback envelope: %+v", svc.lastCallback)
	}
}

func TestValidateCaseMissingCaseData(t *testing.T) {
	router := newCallbackRouter(&stubService{})

	rec := postJSON(t, router, "/validate-case", map[string]any{"event_id": "appealCreated"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
