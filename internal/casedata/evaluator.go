// Package casedata holds the business rules that stamp derived routing and
// classification fields onto a case and pick the lifecycle event to fire.
// It never talks to the external store.
package casedata

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"sscs-bulk-scan/internal/casecode"
	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/internal/refdata"
)

// Evaluator computes the derived fields merged into a case record before it
// is sent to the store.
type Evaluator struct {
	caseEvent  domain.CaseEvent
	rtlOffices []string
	offices    *refdata.OfficeLookup
	venues     *refdata.VenueLookup
	postcodes  refdata.PostcodeValidator
	logger     *slog.Logger
}

// NewEvaluator wires the evaluator with its reference lookups. rtlOffices
// is the allow-list of office codes whose cases go straight to listing.
func NewEvaluator(
	caseEvent domain.CaseEvent,
	rtlOffices []string,
	offices *refdata.OfficeLookup,
	venues *refdata.VenueLookup,
	postcodes refdata.PostcodeValidator,
	logger *slog.Logger,
) *Evaluator {
	return &Evaluator{
		caseEvent:  caseEvent,
		rtlOffices: rtlOffices,
		offices:    offices,
		venues:     venues,
		postcodes:  postcodes,
		logger:     logger,
	}
}

// ApplyDerivedFields stamps the derived fields for the case-creation path.
// An unrecognized benefit type aborts with a casecode.MappingError; the
// caller surfaces it as a transformation failure.
func (e *Evaluator) ApplyDerivedFields(ctx context.Context, rec *domain.CaseRecord) error {
	rec.EvidencePresent = HasEvidence(rec.Documents)

	appeal := rec.Appeal
	if appeal == nil {
		return nil
	}

	if appeal.BenefitType != nil {
		benefitCode, err := casecode.BenefitCode(appeal.BenefitType.Code)
		if err != nil {
			return err
		}
		rec.BenefitCode = benefitCode
		rec.IssueCode = casecode.IssueCode
		rec.CaseCode = casecode.CaseCode(benefitCode, casecode.IssueCode)

		if appeal.MrnDetails != nil && appeal.MrnDetails.DwpIssuingOffice != "" {
			rec.DwpRegionalCentre = e.offices.RegionalCentre(
				appeal.BenefitType.Code, appeal.MrnDetails.DwpIssuingOffice)
		}
	}

	rec.CreatedInGapsFrom = e.CreatedInGapsFrom(appeal)

	if rec.ProcessingVenue == "" && appeal.BenefitType != nil {
		rec.ProcessingVenue = e.FindProcessingVenue(ctx, appeal.Appellant, appeal.BenefitType)
	}
	return nil
}

// StampExistingCase recomputes the derived fields on a case that already
// lives in the store. Unlike the creation path, a benefit code mapping
// failure is swallowed and the code fields are simply left unset; the rest
// of the case is still processed.
func (e *Evaluator) StampExistingCase(ctx context.Context, rec *domain.CaseRecord) {
	rec.CreatedInGapsFrom = domain.StateReadyToList
	rec.EvidencePresent = HasEvidence(rec.Documents)

	appeal := rec.Appeal
	if appeal == nil || appeal.BenefitType == nil || strings.TrimSpace(appeal.BenefitType.Code) == "" {
		return
	}

	benefitCode, err := casecode.BenefitCode(appeal.BenefitType.Code)
	var mappingErr *casecode.MappingError
	if err != nil && !errors.As(err, &mappingErr) {
		return
	}

	rec.BenefitCode = benefitCode
	rec.IssueCode = casecode.IssueCode
	rec.CaseCode = casecode.CaseCode(benefitCode, casecode.IssueCode)

	if appeal.MrnDetails != nil && appeal.MrnDetails.DwpIssuingOffice != "" {
		rec.DwpRegionalCentre = e.offices.RegionalCentre(
			appeal.BenefitType.Code, appeal.MrnDetails.DwpIssuingOffice)
	}

	if venue := e.FindProcessingVenue(ctx, appeal.Appellant, appeal.BenefitType); venue != "" {
		rec.ProcessingVenue = venue
	}
}

// CreatedInGapsFrom decides which workflow stage a new case starts in.
// Offices on the ready-to-list allow-list skip the validity stage; unknown
// offices fall back to the valid-appeal stage. Empty when benefit type,
// office, or MRN details are missing.
func (e *Evaluator) CreatedInGapsFrom(appeal *domain.Appeal) string {
	if appeal == nil || appeal.BenefitType == nil ||
		appeal.MrnDetails == nil || appeal.MrnDetails.DwpIssuingOffice == "" {
		return ""
	}

	mapping, ok := e.offices.MappingByOffice(appeal.BenefitType.Code, appeal.MrnDetails.DwpIssuingOffice)
	if ok && slices.Contains(e.rtlOffices, mapping.Code) {
		return domain.StateReadyToList
	}
	return domain.StateValidAppeal
}

// FindProcessingVenue resolves the hearing venue from the appointee's
// postcode when present and valid, falling back to the appellant's. An
// invalid or missing postcode yields no venue, not an error.
func (e *Evaluator) FindProcessingVenue(ctx context.Context, appellant *domain.Appellant, benefitType *domain.BenefitType) string {
	if appellant == nil || benefitType == nil {
		return ""
	}

	postcode := ""
	if appointee := appellant.Appointee; appointee != nil && appointee.Address != nil &&
		e.isValidPostcode(ctx, appointee.Address.Postcode) {
		postcode = appointee.Address.Postcode
	} else if appellant.Address != nil && e.isValidPostcode(ctx, appellant.Address.Postcode) {
		postcode = appellant.Address.Postcode
	}

	if postcode == "" {
		return ""
	}
	return e.venues.VenueForPostcode(postcode, benefitType.Code)
}

func (e *Evaluator) isValidPostcode(ctx context.Context, postcode string) bool {
	return e.postcodes.IsValidFormat(postcode) && e.postcodes.IsValid(ctx, postcode)
}

// HasEvidence reports the store's yes/no flag for attached documents.
func HasEvidence(documents []domain.Document) string {
	if len(documents) == 0 {
		return "No"
	}
	return "Yes"
}
