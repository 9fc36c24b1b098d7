// Package validate applies the business rules a structured appeal must
// satisfy before a case is created or updated. Missing detail surfaces as
// warnings a caseworker can resolve; malformed detail is an error.
package validate

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/internal/refdata"
	"sscs-bulk-scan/pkg/requestcontext"
)

var ninoFormat = regexp.MustCompile(`^[A-CEGHJ-PR-TW-Z]{2}[0-9]{6}[A-D\s]?$`)

// Validator checks transformed cases against the appeal business rules.
type Validator struct {
	postcodes refdata.PostcodeValidator
	logger    *slog.Logger
}

func New(postcodes refdata.PostcodeValidator, logger *slog.Logger) *Validator {
	return &Validator{postcodes: postcodes, logger: logger}
}

// ValidateExceptionRecord validates the transformed case of an exception
// record. The transformed response's existing messages are carried
// forward.
func (v *Validator) ValidateExceptionRecord(ctx context.Context, transformed domain.CaseResponse, _ domain.ExceptionRecord, _ bool) (domain.CaseResponse, error) {
	result := domain.CaseResponse{
		Record:   transformed.Record,
		Errors:   append([]string(nil), transformed.Errors...),
		Warnings: append([]string(nil), transformed.Warnings...),
	}
	v.check(ctx, transformed.Record, false, &result)
	return result, nil
}

// ValidateCaseRecord validates a live case record. ignoreMrnValidation
// suppresses the MRN rules when a direction lets an out-of-time appeal
// proceed.
func (v *Validator) ValidateCaseRecord(ctx context.Context, rec *domain.CaseRecord, ignoreMrnValidation bool) (domain.CaseResponse, error) {
	result := domain.CaseResponse{Record: rec}
	v.check(ctx, rec, ignoreMrnValidation, &result)
	return result, nil
}

func (v *Validator) check(ctx context.Context, rec *domain.CaseRecord, ignoreMrn bool, result *domain.CaseResponse) {
	if rec == nil || rec.Appeal == nil {
		result.Errors = append(result.Errors, "appeal data is missing")
		return
	}
	appeal := rec.Appeal

	v.checkAppellant(appeal.Appellant, result)

	if appeal.BenefitType == nil || appeal.BenefitType.Code == "" {
		result.Warnings = append(result.Warnings, "benefit_type_description is empty")
	}

	if !ignoreMrn {
		v.checkMrn(ctx, appeal.MrnDetails, result)
	}
}

func (v *Validator) checkAppellant(appellant *domain.Appellant, result *domain.CaseResponse) {
	if appellant == nil {
		result.Warnings = append(result.Warnings, "person1_first_name is empty")
		return
	}

	if appellant.Name == nil || appellant.Name.FirstName == "" {
		result.Warnings = append(result.Warnings, "person1_first_name is empty")
	}
	if appellant.Name == nil || appellant.Name.LastName == "" {
		result.Warnings = append(result.Warnings, "person1_last_name is empty")
	}

	if appellant.Identity == nil || appellant.Identity.Nino == "" {
		result.Warnings = append(result.Warnings, "person1_nino is empty")
	} else if !ninoFormat.MatchString(appellant.Identity.Nino) {
		result.Errors = append(result.Errors, "person1_nino is invalid")
	}

	if appellant.Address == nil || appellant.Address.Postcode == "" {
		result.Warnings = append(result.Warnings, "person1_postcode is empty")
	} else if !v.postcodes.IsValidFormat(appellant.Address.Postcode) {
		result.Errors = append(result.Errors, "person1_postcode is not a valid postcode")
	}
}

func (v *Validator) checkMrn(ctx context.Context, mrn *domain.MrnDetails, result *domain.CaseResponse) {
	if mrn == nil || mrn.MrnDate == "" {
		result.Warnings = append(result.Warnings, "mrn_date is empty")
		return
	}

	parsed, err := time.ParseInLocation("2006-01-02", mrn.MrnDate, time.UTC)
	if err != nil {
		result.Errors = append(result.Errors, "mrn_date is an invalid date field")
		return
	}
	if parsed.After(requestcontext.Now(ctx)) {
		result.Errors = append(result.Errors, "mrn_date is in the future")
	}

	if mrn.DwpIssuingOffice == "" {
		result.Warnings = append(result.Warnings, "office is empty")
	}
}
