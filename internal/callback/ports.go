package callback

import (
	"context"

	"sscs-bulk-scan/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports-mocks.go -package=mocks Transformer,Validator

// Transformer maps a scanned exception record onto a structured case.
// Mapping problems are reported in-band on the CaseResponse; the error
// return is for unexpected failures only.
type Transformer interface {
	Transform(ctx context.Context, record domain.ExceptionRecord, dryRun bool) (domain.CaseResponse, error)
}

// Validator applies the business rules to a transformed case.
type Validator interface {
	// ValidateExceptionRecord validates the transformed case of an
	// exception record.
	ValidateExceptionRecord(ctx context.Context, transformed domain.CaseResponse, record domain.ExceptionRecord, dryRun bool) (domain.CaseResponse, error)

	// ValidateCaseRecord validates a live case record.
	// ignoreMrnValidation suppresses the MRN checks when a direction lets
	// an out-of-time appeal proceed.
	ValidateCaseRecord(ctx context.Context, rec *domain.CaseRecord, ignoreMrnValidation bool) (domain.CaseResponse, error)
}
