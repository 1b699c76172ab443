package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	analyticsservice "founderops/contexts/founder-ops/analytics-service"
	founderopshttp "founderops/contexts/founder-ops/analytics-service/transport/http"
)

func newTestServer() *Server {
	return New(analyticsservice.NewInMemoryModule(nil), nil, ":0")
}

func doRequest(t *testing.T, server *Server, method string, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(""))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestFounderOpsEndpointReturnsDocument(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodGet, "/v1/campaigns/camp-aurora-deck/founder-ops", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp founderopshttp.FounderOpsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success status, got %q", resp.Status)
	}
	if resp.Data.CampaignID != "camp-aurora-deck" {
		t.Fatalf("unexpected campaign id %q", resp.Data.CampaignID)
	}
	if len(resp.Data.SummaryMetrics) != 4 {
		t.Fatalf("expected 4 summary metrics, got %d", len(resp.Data.SummaryMetrics))
	}
	if len(resp.Data.Priorities) == 0 {
		t.Fatalf("expected non-empty priorities")
	}
	if resp.Data.Source != "local" {
		t.Fatalf("expected local source, got %q", resp.Data.Source)
	}
}

func TestFounderOpsEndpointUnknownCampaign(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodGet, "/v1/campaigns/camp-nope/founder-ops", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var errResp founderopshttp.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "campaign_not_found" {
		t.Fatalf("expected campaign_not_found, got %q", errResp.Code)
	}
}

func TestVelocityEndpointClampsProgress(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodGet, "/v1/campaigns/camp-aurora-deck/founder-ops/velocity", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp founderopshttp.VelocityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.ProgressPercent < 0 || resp.Data.ProgressPercent > 200 {
		t.Fatalf("expected clamped progress percent, got %f", resp.Data.ProgressPercent)
	}
	if resp.Data.DaysElapsed < 1 {
		t.Fatalf("expected at least one elapsed day, got %d", resp.Data.DaysElapsed)
	}
}

func TestFulfillmentEndpointFlagsLowStock(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodGet, "/v1/campaigns/camp-aurora-deck/founder-ops/fulfillment", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp founderopshttp.FulfillmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data == nil {
		t.Fatalf("expected fulfillment block for seeded campaign")
	}
	if len(resp.Data.LowInventoryRewards) != 1 {
		t.Fatalf("expected one low-stock tier, got %d", len(resp.Data.LowInventoryRewards))
	}
}

func TestCreateReportRequiresUserHeader(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", map[string]string{
		"Idempotency-Key": "idem-http-1",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user header, got %d", rec.Code)
	}
}

func TestCreateReportRequiresIdempotencyKey(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", map[string]string{
		"X-User-Id": "founder-1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without idempotency key, got %d", rec.Code)
	}
}

func TestCreateReportAndListRoundTrip(t *testing.T) {
	server := newTestServer()
	headers := map[string]string{
		"X-User-Id":       "founder-1",
		"Idempotency-Key": "idem-http-2",
	}

	rec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", headers)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created founderopshttp.CreateReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Replayed {
		t.Fatalf("expected fresh report on first request")
	}

	replayRec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", headers)
	if replayRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 replay, got %d", replayRec.Code)
	}
	var replayed founderopshttp.CreateReportResponse
	if err := json.Unmarshal(replayRec.Body.Bytes(), &replayed); err != nil {
		t.Fatalf("decode replay response: %v", err)
	}
	if !replayed.Replayed {
		t.Fatalf("expected replayed flag on duplicate idempotency key")
	}
	if created.Data.ReportID != replayed.Data.ReportID {
		t.Fatalf("expected same report id, got %s and %s", created.Data.ReportID, replayed.Data.ReportID)
	}

	listRec := doRequest(t, server, http.MethodGet, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", nil)
	if listRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listRec.Code)
	}
	var list founderopshttp.ListReportsResponse
	if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if list.Data.TotalCount != 1 {
		t.Fatalf("expected one stored report, got %d", list.Data.TotalCount)
	}
	if list.Data.Items[0].ReportID != created.Data.ReportID {
		t.Fatalf("expected stored report id %s, got %s", created.Data.ReportID, list.Data.Items[0].ReportID)
	}
}

func TestCreateReportConflictOnReusedKey(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", map[string]string{
		"X-User-Id":       "founder-1",
		"Idempotency-Key": "idem-http-3",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	conflictRec := doRequest(t, server, http.MethodPost, "/v1/campaigns/camp-aurora-deck/founder-ops/reports", map[string]string{
		"X-User-Id":       "founder-2",
		"Idempotency-Key": "idem-http-3",
	})
	if conflictRec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for reused key with different request, got %d", conflictRec.Code)
	}
}
