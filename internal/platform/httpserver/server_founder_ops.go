package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	founderopsdomainerrors "founderops/contexts/founder-ops/analytics-service/domain/errors"
	founderopshttp "founderops/contexts/founder-ops/analytics-service/transport/http"
)

func writeFounderOpsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, founderopshttp.ErrorResponse{Code: code, Message: message})
}

func writeFounderOpsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, founderopsdomainerrors.ErrCampaignNotFound):
		writeFounderOpsError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, founderopsdomainerrors.ErrReportNotFound):
		writeFounderOpsError(w, http.StatusNotFound, "report_not_found", err.Error())
	case errors.Is(err, founderopsdomainerrors.ErrInvalidRequest):
		writeFounderOpsError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, founderopsdomainerrors.ErrIdempotencyKeyRequired):
		writeFounderOpsError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, founderopsdomainerrors.ErrIdempotencyConflict):
		writeFounderOpsError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	default:
		writeFounderOpsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireFounderOpsUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeFounderOpsError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func requireFounderOpsIdempotencyKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey == "" {
		writeFounderOpsError(w, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header is required")
		return "", false
	}
	return idempotencyKey, true
}

func (s *Server) handleGetFounderOps(w http.ResponseWriter, r *http.Request) {
	resp, err := s.founderOps.Handler.FounderOpsHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVelocity(w http.ResponseWriter, r *http.Request) {
	resp, err := s.founderOps.Handler.VelocityHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCommunity(w http.ResponseWriter, r *http.Request) {
	resp, err := s.founderOps.Handler.CommunityHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetFulfillment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.founderOps.Handler.FulfillmentHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	resp, err := s.founderOps.Handler.ListReportsHandler(
		r.Context(),
		r.PathValue("campaign_id"),
		r.URL.Query().Get("limit"),
	)
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireFounderOpsUser(w, r)
	if !ok {
		return
	}
	idempotencyKey, ok := requireFounderOpsIdempotencyKey(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeFounderOpsError(w, http.StatusBadRequest, "invalid_request", "unable to read request body")
		return
	}
	if len(body) > 0 {
		var req founderopshttp.CreateReportRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeFounderOpsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.founderOps.Handler.CreateReportHandler(
		r.Context(),
		idempotencyKey,
		userID,
		r.PathValue("campaign_id"),
	)
	if err != nil {
		writeFounderOpsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
