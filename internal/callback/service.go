// Package callback sequences the work behind each externally-delivered
// callback: transform, validate, select the lifecycle event, and hand over
// to case creation.
package callback

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sscs-bulk-scan/internal/casecreation"
	"sscs-bulk-scan/internal/casedata"
	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/pkg/requestcontext"
)

// CaseTypeID identifies the case type this gateway creates.
const CaseTypeID = "Benefit"

// CaseCreationDetails bundles everything the caller needs to show for a
// transformed case.
type CaseCreationDetails struct {
	CaseTypeID string
	EventID    string
	Record     *domain.CaseRecord
}

// TransformResult is the success payload of the create-case path.
type TransformResult struct {
	State               string
	CaseID              string
	CaseCreationDetails CaseCreationDetails
	Warnings            []string
}

// LiveCallback is the envelope delivered when an event fires on a case
// that already exists in the store.
type LiveCallback struct {
	Event  string
	CaseID string
	Record *domain.CaseRecord
}

// PreSubmitResult is the answer to a live-case callback. Errors block the
// triggering event; warnings are advisory.
type PreSubmitResult struct {
	Record   *domain.CaseRecord
	Errors   []string
	Warnings []string
}

// Service is the per-callback entry point.
type Service struct {
	transformer Transformer
	validator   Validator
	evaluator   *casedata.Evaluator
	creation    *casecreation.Service
	caseEvent   domain.CaseEvent
	logger      *slog.Logger
}

func NewService(
	transformer Transformer,
	validator Validator,
	evaluator *casedata.Evaluator,
	creation *casecreation.Service,
	caseEvent domain.CaseEvent,
	logger *slog.Logger,
) *Service {
	return &Service{
		transformer: transformer,
		validator:   validator,
		evaluator:   evaluator,
		creation:    creation,
		caseEvent:   caseEvent,
		logger:      logger,
	}
}

// Validate runs transformation and validation without persisting anything.
// Transformation errors short-circuit; validation never sees a case that
// failed to transform.
func (s *Service) Validate(ctx context.Context, record domain.ExceptionRecord) (domain.CaseResponse, error) {
	transformed, err := s.transformer.Transform(ctx, record, true)
	if err != nil {
		return domain.CaseResponse{}, err
	}
	if transformed.HasErrors() {
		s.logger.InfoContext(ctx, "errors found during validation", "record_id", record.EffectiveID())
		return transformed, nil
	}

	return s.validator.ValidateExceptionRecord(ctx, transformed, record, true)
}

// Transform runs the full create-case path: transform, validate, select
// the event, stamp the referral reason, and create the case in the store.
// Automated submissions tolerate zero ambiguity, so their warnings are
// escalated to failures at both steps.
func (s *Service) Transform(ctx context.Context, record domain.ExceptionRecord, ignoreWarnings bool, token domain.Token) (*TransformResult, error) {
	recordID := record.EffectiveID()
	s.logger.InfoContext(ctx, "processing exception record callback",
		"record_id", recordID, "automated", record.IsAutomatedProcess)

	transformed, err := s.transformer.Transform(ctx, record, false)
	if err != nil {
		return nil, err
	}
	if transformed.HasErrors() {
		s.logger.InfoContext(ctx, "errors found while transforming exception record",
			"record_id", recordID, "errors", joinMessages(transformed.Errors))
		return nil, &InvalidExceptionRecordError{Messages: transformed.Errors}
	}
	if record.IsAutomatedProcess && transformed.HasWarnings() {
		s.logger.InfoContext(ctx, "warnings found while transforming automated exception record",
			"record_id", recordID)
		return nil, &InvalidExceptionRecordError{Messages: transformed.Warnings}
	}

	validated, err := s.validator.ValidateExceptionRecord(ctx, transformed, record, false)
	if err != nil {
		return nil, err
	}
	if validated.HasErrors() {
		s.logger.InfoContext(ctx, "errors found while validating exception record",
			"record_id", recordID, "errors", joinMessages(validated.Errors))
		return nil, &InvalidExceptionRecordError{Messages: validated.Errors}
	}
	if record.IsAutomatedProcess && validated.HasWarnings() {
		s.logger.InfoContext(ctx, "warnings found while validating automated exception record",
			"record_id", recordID, "warnings", joinMessages(validated.Warnings))
		return nil, &InvalidExceptionRecordError{Messages: validated.Warnings}
	}

	eventID := casedata.SelectEvent(s.caseEvent, validated, requestcontext.Now(ctx))
	casedata.StampReferredCase(s.caseEvent, validated.Record, eventID)

	result := &TransformResult{
		CaseCreationDetails: CaseCreationDetails{
			CaseTypeID: CaseTypeID,
			EventID:    eventID,
			Record:     validated.Record,
		},
		Warnings: validated.Warnings,
	}

	handled, err := s.creation.Handle(ctx, record, validated, ignoreWarnings, token)
	if err != nil {
		return nil, err
	}
	if handled != nil {
		result.State = handled.State
		result.CaseID = handled.CaseID
	}
	return result, nil
}

// ValidateAndUpdate re-validates a case that already exists in the store
// and stamps the derived fields onto it. Warnings and errors both block
// here: the triggering user is mid-event and must resolve everything.
func (s *Service) ValidateAndUpdate(ctx context.Context, cb LiveCallback, token domain.Token) (*PreSubmitResult, error) {
	s.logger.InfoContext(ctx, "processing validation and update request", "case_id", cb.CaseID)
	rec := cb.Record
	if rec == nil {
		return nil, errors.New("callback carries no case data")
	}

	if rec.InterlocReviewState != "" {
		rec.InterlocReviewState = domain.InterlocReviewNone
	}

	s.evaluator.StampExistingCase(ctx, rec)

	validated, err := s.validator.ValidateCaseRecord(ctx, rec, s.ignoreMrnValidation(cb))
	if err != nil {
		return nil, err
	}

	if merged := mergeWarningsAndErrors(validated); len(merged) > 0 {
		s.logger.InfoContext(ctx, "errors found while validating case",
			"case_id", cb.CaseID, "errors", joinMessages(merged))
		return &PreSubmitResult{Record: rec, Errors: merged}, nil
	}

	s.logger.InfoContext(ctx, "case validated successfully", "case_id", cb.CaseID)
	if err := s.creation.CheckForMatches(ctx, rec, token); err != nil {
		return nil, err
	}
	return &PreSubmitResult{Record: rec, Warnings: validated.Warnings}, nil
}

// ignoreMrnValidation is true only when a direction-issued event carries
// the appeal-to-proceed direction type.
func (s *Service) ignoreMrnValidation(cb LiveCallback) bool {
	if cb.Event != domain.EventDirectionIssued && cb.Event != domain.EventDirectionIssuedWelsh {
		return false
	}
	return cb.Record != nil && cb.Record.DirectionType == domain.DirectionAppealToProceed
}

// mergeWarningsAndErrors collapses both lists into one error list,
// warnings first.
func mergeWarningsAndErrors(response domain.CaseResponse) []string {
	if !response.HasErrors() && !response.HasWarnings() {
		return nil
	}
	merged := make([]string, 0, len(response.Warnings)+len(response.Errors))
	merged = append(merged, response.Warnings...)
	merged = append(merged, response.Errors...)
	return merged
}

func joinMessages(messages []string) string {
	return strings.Join(messages, ". ")
}
