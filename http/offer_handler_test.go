package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"mortgage-agent/catalog"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

func newTestRouter(t *testing.T, loaded bool, capacity int) http.Handler {
	t.Helper()

	repo := repository.NewCatalogRepositoryMemory()
	if loaded {
		job := catalog.NewRefreshJob(catalog.EmbeddedSource{}, repo, zerolog.Nop())
		if _, err := job.Refresh(context.Background()); err != nil {
			t.Fatalf("loading catalog: %v", err)
		}
	}

	advisor := service.NewAdvisorService(repo, zerolog.Nop())
	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(NewOfferHandler(advisor, zerolog.Nop()), limiter, zerolog.Nop())
}

const offersBody = `{
	"loan_amount": 300000,
	"term_years": 25,
	"down_payment": 100000,
	"monthly_income": 7000,
	"purpose": "purchase",
	"rate_type": "variable"
}`

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCompareOffersHandler_OK(t *testing.T) {
	router := newTestRouter(t, true, 10)

	w := post(router, "/mortgage/offers", offersBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp OffersResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count == 0 || resp.Count != len(resp.Offers) {
		t.Fatalf("unexpected count %d for %d offers", resp.Count, len(resp.Offers))
	}
	if resp.CatalogVersion == "" {
		t.Errorf("expected catalog version")
	}
	for i := 1; i < len(resp.Offers); i++ {
		if resp.Offers[i].TotalCost.LessThan(resp.Offers[i-1].TotalCost) {
			t.Errorf("offers not sorted by total cost at position %d", i+1)
		}
	}
	if !resp.Offers[0].TopTier || resp.Offers[0].Position != 1 {
		t.Errorf("first offer should be top tier at position 1")
	}
}

func TestCompareOffersHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, true, 10)

	w := post(router, "/mortgage/offers", `{invalid-json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w = post(router, "/mortgage/offers", `{"loan_amount": 100000, "term_years": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid term, got %d", w.Code)
	}
}

func TestCompareOffersHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, true, 10)

	req := httptest.NewRequest(http.MethodGet, "/mortgage/offers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCompareOffersHandler_CatalogNotLoaded(t *testing.T) {
	router := newTestRouter(t, false, 10)

	w := post(router, "/mortgage/offers", offersBody)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestAssessOfferHandler_OK(t *testing.T) {
	router := newTestRouter(t, true, 10)

	var body map[string]any
	if err := json.Unmarshal([]byte(offersBody), &body); err != nil {
		t.Fatal(err)
	}
	body["lender_id"] = "meridian"
	raw, _ := json.Marshal(body)

	w := post(router, "/mortgage/assess", string(raw))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp AssessmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Offer.LenderID != "meridian" {
		t.Errorf("expected meridian, got %s", resp.Offer.LenderID)
	}
	if len(resp.Risk.Scenarios) != 3 {
		t.Errorf("expected 3 rate scenarios, got %d", len(resp.Risk.Scenarios))
	}
	if resp.Comparison.Rank < 1 || resp.Comparison.Rank > resp.Comparison.SetSize {
		t.Errorf("rank %d outside set of %d", resp.Comparison.Rank, resp.Comparison.SetSize)
	}
}

func TestAssessOfferHandler_Errors(t *testing.T) {
	router := newTestRouter(t, true, 10)

	w := post(router, "/mortgage/assess", offersBody)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without lender_id, got %d", w.Code)
	}

	// Citadel only offers fixed rates.
	var body map[string]any
	json.Unmarshal([]byte(offersBody), &body)
	body["lender_id"] = "citadel"
	raw, _ := json.Marshal(body)

	w = post(router, "/mortgage/assess", string(raw))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for ineligible lender, got %d", w.Code)
	}
}

func TestListLendersHandler(t *testing.T) {
	router := newTestRouter(t, true, 10)

	req := httptest.NewRequest(http.MethodGet, "/mortgage/lenders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestOffersHandler_RateLimited(t *testing.T) {
	router := newTestRouter(t, true, 2)

	for i := 0; i < 2; i++ {
		if w := post(router, "/mortgage/offers", offersBody); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := post(router, "/mortgage/offers", offersBody)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header")
	}
}
