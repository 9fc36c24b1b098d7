package casecreation

import (
	"context"

	"sscs-bulk-scan/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/store-mocks.go -package=mocks CaseStore

// CaseStore is the boundary to the external case-management store. All
// calls are synchronous; a failed call propagates immediately with no
// retry here.
type CaseStore interface {
	// FindCaseBy returns every case matching all criteria exactly.
	FindCaseBy(ctx context.Context, criteria map[string]string, token domain.Token) ([]domain.CaseDetails, error)

	// CreateCase submits a new case with the given event and returns its id.
	CreateCase(ctx context.Context, rec *domain.CaseRecord, token domain.Token, eventID string) (int64, error)

	// UpdateCase fires an event against an existing case.
	UpdateCase(ctx context.Context, rec *domain.CaseRecord, token domain.Token, eventID, summary, description string, caseID int64) error
}
