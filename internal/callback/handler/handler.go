package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sscs-bulk-scan/internal/callback"
	"sscs-bulk-scan/internal/callback/metrics"
	"sscs-bulk-scan/internal/ccd"
	"sscs-bulk-scan/internal/domain"
	dErrors "sscs-bulk-scan/pkg/domain-errors"
	"sscs-bulk-scan/pkg/platform/httputil"
	"sscs-bulk-scan/pkg/requestcontext"
)

// Service defines the callback operations the HTTP layer exposes.
type Service interface {
	Validate(ctx context.Context, record domain.ExceptionRecord) (domain.CaseResponse, error)
	Transform(ctx context.Context, record domain.ExceptionRecord, ignoreWarnings bool, token domain.Token) (*callback.TransformResult, error)
	ValidateAndUpdate(ctx context.Context, cb callback.LiveCallback, token domain.Token) (*callback.PreSubmitResult, error)
}

// Handler wires the callback endpoints to the callback service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a callback handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the callback endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/transform-exception-record", h.HandleTransform)
	r.Post("/validate-record", h.HandleValidate)
	r.Post("/validate-case", h.HandleValidateCase)
}

// HandleTransform handles POST /transform-exception-record: the full
// transform, validate and create path.
func (h *Handler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ExceptionRecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOutcome("transform", "bad_request")
		return
	}

	result, err := h.service.Transform(ctx, req.Record(), req.IgnoreWarnings, requestcontext.Token(ctx))
	if err != nil {
		h.writeTransformError(ctx, w, requestID, err)
		return
	}

	h.metrics.IncrementOutcome("transform", "success")
	h.metrics.ObserveLatency("transform", time.Since(start))
	httputil.WriteJSON(w, http.StatusOK, FromTransformResult(result))
}

// HandleValidate handles POST /validate-record: transform and validate
// only, no persistence.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ExceptionRecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOutcome("validate", "bad_request")
		return
	}

	result, err := h.service.Validate(ctx, req.Record())
	if err != nil {
		h.logger.ErrorContext(ctx, "validation callback failed",
			"request_id", requestID, "error", err)
		h.metrics.IncrementOutcome("validate", "error")
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "validation failed"))
		return
	}

	h.metrics.IncrementOutcome("validate", string(domain.StatusOf(result.Errors, result.Warnings)))
	h.metrics.ObserveLatency("validate", time.Since(start))
	httputil.WriteJSON(w, http.StatusOK, ValidateResponse{
		Status:   string(domain.StatusOf(result.Errors, result.Warnings)),
		Errors:   emptyIfNil(result.Errors),
		Warnings: emptyIfNil(result.Warnings),
	})
}

// HandleValidateCase handles POST /validate-case: re-validate a case that
// already exists in the store and stamp its derived fields.
func (h *Handler) HandleValidateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CaseCallbackRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		h.metrics.IncrementOutcome("validate_case", "bad_request")
		return
	}

	result, err := h.service.ValidateAndUpdate(ctx, req.LiveCallback(), requestcontext.Token(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "case validation callback failed",
			"request_id", requestID, "case_id", req.CaseDetails.ID, "error", err)
		h.metrics.IncrementOutcome("validate_case", "error")
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "case validation failed"))
		return
	}

	outcome := "success"
	if len(result.Errors) > 0 {
		outcome = "errors"
	}
	h.metrics.IncrementOutcome("validate_case", outcome)
	h.metrics.ObserveLatency("validate_case", time.Since(start))
	httputil.WriteJSON(w, http.StatusOK, CaseValidationResponse{
		Data:     result.Record,
		Errors:   emptyIfNil(result.Errors),
		Warnings: emptyIfNil(result.Warnings),
	})
}

// writeTransformError separates rejected records (caller-visible message
// lists, 422) from wrapped creation failures and transport errors (5xx).
func (h *Handler) writeTransformError(ctx context.Context, w http.ResponseWriter, requestID string, err error) {
	var invalid *callback.InvalidExceptionRecordError
	if errors.As(err, &invalid) {
		h.metrics.IncrementOutcome("transform", "rejected")
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, MessageListResponse{
			Errors:   emptyIfNil(invalid.Messages),
			Warnings: []string{},
		})
		return
	}

	h.logger.ErrorContext(ctx, "transform callback failed", "request_id", requestID, "error", err)
	h.metrics.IncrementOutcome("transform", "error")

	var transport *ccd.TransportError
	if errors.As(err, &transport) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUpstreamFailure, "case store unavailable"))
		return
	}
	httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "case creation failed"))
}
