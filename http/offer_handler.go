package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

type AssessRequest struct {
	domain.BorrowerRequest
	LenderID string `json:"lender_id"`
}

type OfferHandler struct {
	service *service.AdvisorService
	log     zerolog.Logger
}

func NewOfferHandler(service *service.AdvisorService, log zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		log:     log.With().Str("component", "offer_handler").Logger(),
	}
}

func (h *OfferHandler) CompareOffers(w http.ResponseWriter, r *http.Request) {
	var input domain.BorrowerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareOffers(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, presentOffers(result))
}

func (h *OfferHandler) AssessOffer(w http.ResponseWriter, r *http.Request) {
	var input AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if input.LenderID == "" {
		http.Error(w, "lender_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.AssessOffer(r.Context(), input.BorrowerRequest, input.LenderID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, presentAssessment(result))
}

func (h *OfferHandler) ListLenders(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Lenders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, snapshot)
}

func (h *OfferHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrLenderNotOffered):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrCatalogNotLoaded):
		http.Error(w, "lender catalog is not available yet", http.StatusServiceUnavailable)
	default:
		h.log.Error().Err(err).Msg("Request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// 200 header behind.
func (h *OfferHandler) writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn().Err(err).Msg("Error writing response")
	}
}
