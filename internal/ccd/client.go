// Package ccd is the HTTP adapter to the external case-management store.
// It exposes search, create and update; everything else about the store is
// someone else's problem.
package ccd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sscs-bulk-scan/internal/domain"
)

// TransportError reports a failed call to the store. It is returned as-is,
// never wrapped, so callers can act on the status code directly.
type TransportError struct {
	Op     string
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("case store %s returned status %d: %s", e.Op, e.Status, e.Body)
}

// Client talks to the case-management store's data API.
type Client struct {
	baseURL    string
	caseTypeID string
	http       *http.Client
	logger     *slog.Logger
}

// New builds a store client for one case type.
func New(baseURL, caseTypeID string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		caseTypeID: caseTypeID,
		http:       &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type searchRequest struct {
	CaseTypeID string            `json:"case_type_id"`
	Criteria   map[string]string `json:"criteria"`
}

type searchResponse struct {
	Cases []domain.CaseDetails `json:"cases"`
}

// FindCaseBy searches cases matching every criterion exactly.
func (c *Client) FindCaseBy(ctx context.Context, criteria map[string]string, token domain.Token) ([]domain.CaseDetails, error) {
	body := searchRequest{CaseTypeID: c.caseTypeID, Criteria: criteria}

	var result searchResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/cases/search", token, body, &result); err != nil {
		return nil, err
	}
	return result.Cases, nil
}

type createRequest struct {
	CaseTypeID string             `json:"case_type_id"`
	EventID    string             `json:"event_id"`
	Data       *domain.CaseRecord `json:"data"`
}

type createResponse struct {
	ID int64 `json:"id"`
}

// CreateCase submits a new case with the given event and returns its id.
func (c *Client) CreateCase(ctx context.Context, rec *domain.CaseRecord, token domain.Token, eventID string) (int64, error) {
	body := createRequest{CaseTypeID: c.caseTypeID, EventID: eventID, Data: rec}

	var result createResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/cases", token, body, &result); err != nil {
		return 0, err
	}
	return result.ID, nil
}

type updateRequest struct {
	EventID     string             `json:"event_id"`
	Summary     string             `json:"summary"`
	Description string             `json:"description"`
	Data        *domain.CaseRecord `json:"data"`
}

// UpdateCase fires an event against an existing case.
func (c *Client) UpdateCase(ctx context.Context, rec *domain.CaseRecord, token domain.Token, eventID, summary, description string, caseID int64) error {
	body := updateRequest{EventID: eventID, Summary: summary, Description: description, Data: rec}
	endpoint := fmt.Sprintf("%s/cases/%d/events", c.baseURL, caseID)
	return c.do(ctx, http.MethodPost, endpoint, token, body, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, token domain.Token, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token.UserAuthToken)
	req.Header.Set("ServiceAuthorization", token.ServiceAuthToken)
	req.Header.Set("user-id", token.UserID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call case store: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read case store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: method + " " + endpoint, Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode case store response: %w", err)
	}
	return nil
}
