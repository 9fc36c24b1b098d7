// Package casecreation decides whether a validated exception record already
// has a case in the external store and creates one when it does not.
package casecreation

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"sscs-bulk-scan/internal/audit"
	"sscs-bulk-scan/internal/casecreation/metrics"
	"sscs-bulk-scan/internal/casedata"
	"sscs-bulk-scan/internal/ccd"
	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/pkg/requestcontext"
)

// StateCaseCreated marks a successfully handled exception record.
const StateCaseCreated = "ScannedRecordCaseCreated"

// Store field paths used for dedup and link searches.
const (
	criteriaNino        = "case.appeal.appellant.identity.nino"
	criteriaBenefitCode = "case.appeal.benefitType.code"
	criteriaMrnDate     = "case.appeal.mrnDetails.mrnDate"
)

const (
	sendToDwpSummary     = "Send to DWP"
	sendToDwpDescription = "Send to DWP event has been triggered from Bulk Scan service"
)

// Service orchestrates case creation for one exception record at a time.
// The dedup query and the subsequent create are not atomic; two concurrent
// submissions of the same record can still race.
type Service struct {
	store     CaseStore
	caseEvent domain.CaseEvent
	logger    *slog.Logger
	metrics   *metrics.Metrics
	audit     *audit.Publisher
}

// NewService wires the orchestrator. metrics and audit may be nil.
func NewService(store CaseStore, caseEvent domain.CaseEvent, logger *slog.Logger, m *metrics.Metrics, auditPub *audit.Publisher) *Service {
	return &Service{
		store:     store,
		caseEvent: caseEvent,
		logger:    logger,
		metrics:   m,
		audit:     auditPub,
	}
}

// Handle runs the creation state machine: gate on warnings, dedup by
// explicit reference then by NINO+benefit+MRN-date, link cases sharing the
// NINO, create, and fire the send-to-DWP follow-up for created appeals.
// Returns nil with no error when the gate is closed.
func (s *Service) Handle(
	ctx context.Context,
	record domain.ExceptionRecord,
	validation domain.CaseResponse,
	ignoreWarnings bool,
	token domain.Token,
) (*domain.HandlerResponse, error) {
	if !canCreateCase(validation, ignoreWarnings) {
		return nil, nil
	}

	recordID := record.EffectiveID()
	eventID := casedata.SelectEvent(s.caseEvent, validation, requestcontext.Now(ctx))
	casedata.StampReferredCase(s.caseEvent, validation.Record, eventID)

	appeal := recordAppeal(validation)
	nino := appeal.Nino()
	benefitType := appeal.BenefitCode()
	mrnDate := appeal.MrnDate()

	caseReference := record.CaseReference
	caseAlreadyExists := false

	if caseReference != "" {
		s.logger.InfoContext(ctx, "case already exists for exception record",
			"case_reference", caseReference, "record_id", recordID)
		caseAlreadyExists = true
	} else if nino != "" && benefitType != "" && mrnDate != "" {
		matches, err := s.store.FindCaseBy(ctx, map[string]string{
			criteriaNino:        nino,
			criteriaBenefitCode: benefitType,
			criteriaMrnDate:     mrnDate,
		}, token)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			s.logger.InfoContext(ctx, "duplicate case found, skipping create",
				"nino", nino, "benefit_type", benefitType, "mrn_date", mrnDate)
			caseAlreadyExists = true
			caseReference = strconv.FormatInt(matches[0].ID, 10)
			s.metrics.IncrementDuplicate()
			s.audit.Emit(ctx, audit.Event{
				RecordID: recordID, CaseID: caseReference, Action: audit.ActionDuplicateFound,
			})
		}
	}

	if !caseAlreadyExists {
		caseID, err := s.createCase(ctx, recordID, nino, validation.Record, token, eventID)
		if err != nil {
			return nil, err
		}
		caseReference = strconv.FormatInt(caseID, 10)
	}

	return &domain.HandlerResponse{State: StateCaseCreated, CaseID: caseReference}, nil
}

func (s *Service) createCase(
	ctx context.Context,
	recordID, nino string,
	rec *domain.CaseRecord,
	token domain.Token,
	eventID string,
) (int64, error) {
	if err := s.linkByNino(ctx, recordID, nino, rec, token); err != nil {
		return 0, s.failCreation(ctx, recordID, err)
	}

	start := time.Now()
	caseID, err := s.store.CreateCase(ctx, rec, token, eventID)
	if err != nil {
		return 0, s.failCreation(ctx, recordID, err)
	}
	s.metrics.ObserveCreateLatency(time.Since(start))
	s.metrics.IncrementCreated(eventID)
	s.audit.Emit(ctx, audit.Event{
		RecordID: recordID, CaseID: strconv.FormatInt(caseID, 10),
		Action: audit.ActionCaseCreated, EventID: eventID,
	})
	s.logger.InfoContext(ctx, "case created from exception record",
		"case_id", caseID, "record_id", recordID, "event", eventID)

	if s.isCaseCreatedEvent(eventID) {
		err := s.store.UpdateCase(ctx, rec, token,
			domain.EventSendToDwp, sendToDwpSummary, sendToDwpDescription, caseID)
		if err != nil {
			return 0, s.failCreation(ctx, recordID, err)
		}
		s.audit.Emit(ctx, audit.Event{
			RecordID: recordID, CaseID: strconv.FormatInt(caseID, 10),
			Action: audit.ActionCaseUpdated, EventID: domain.EventSendToDwp,
		})
		s.logger.InfoContext(ctx, "case updated with send-to-DWP event", "case_id", caseID)
	}

	return caseID, nil
}

// CheckForMatches runs the NINO link pass on a live case record: every
// store case sharing the appellant's NINO is attached as an associated
// case link.
func (s *Service) CheckForMatches(ctx context.Context, rec *domain.CaseRecord, token domain.Token) error {
	nino := ""
	if rec != nil {
		nino = rec.Appeal.Nino()
	}
	return s.linkByNino(ctx, "", nino, rec, token)
}

func (s *Service) linkByNino(ctx context.Context, recordID, nino string, rec *domain.CaseRecord, token domain.Token) error {
	var matches []domain.CaseDetails
	if nino != "" {
		found, err := s.store.FindCaseBy(ctx, map[string]string{criteriaNino: nino}, token)
		if err != nil {
			return err
		}
		matches = found
	}

	added := AddAssociatedCases(rec, matches)
	s.metrics.AddLinked(added)
	if added > 0 {
		s.audit.Emit(ctx, audit.Event{
			RecordID: recordID, Action: audit.ActionCasesLinked,
			Detail: strconv.Itoa(added) + " linked by nino",
		})
	}
	return nil
}

// AddAssociatedCases attaches a case link per matched case, deduplicated by
// case id, and sets the linked-cases flag either way. Returns how many
// links were added.
func AddAssociatedCases(rec *domain.CaseRecord, matches []domain.CaseDetails) int {
	if rec == nil {
		return 0
	}

	seen := make(map[string]struct{}, len(matches))
	links := make([]domain.CaseLink, 0, len(matches))
	for _, match := range matches {
		ref := strconv.FormatInt(match.ID, 10)
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		links = append(links, domain.CaseLink{CaseReference: ref})
	}

	if len(links) > 0 {
		rec.AssociatedCases = links
		rec.LinkedCasesBoolean = "Yes"
	} else {
		rec.LinkedCasesBoolean = "No"
	}
	return len(links)
}

// failCreation wraps unexpected failures with the record id for
// traceability. Store transport errors pass through untouched so upstream
// retry or circuit-breaking can act on them.
func (s *Service) failCreation(ctx context.Context, recordID string, err error) error {
	var transportErr *ccd.TransportError
	if errors.As(err, &transportErr) {
		return err
	}
	wrapped := &CaseDataError{RecordID: recordID, Err: err}
	s.logger.ErrorContext(ctx, "case creation failed", "record_id", recordID, "error", err)
	return wrapped
}

func (s *Service) isCaseCreatedEvent(eventID string) bool {
	return eventID == s.caseEvent.CaseCreatedEventID ||
		eventID == s.caseEvent.ValidAppealCreatedEventID
}

// canCreateCase gates creation: any warning blocks unless the caller chose
// to ignore warnings.
func canCreateCase(validation domain.CaseResponse, ignoreWarnings bool) bool {
	return !validation.HasWarnings() || ignoreWarnings
}

func recordAppeal(validation domain.CaseResponse) *domain.Appeal {
	if validation.Record == nil {
		return nil
	}
	return validation.Record.Appeal
}
