package handlers

import (
	"net/http"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	uploads     *ingest.UploadService
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided dependencies.
func NewFundHandler(uploads *ingest.UploadService, fundService *service.FundService) *FundHandler {
	return &FundHandler{
		uploads:     uploads,
		fundService: fundService,
	}
}

// Funds handles GET requests for the selectable funds of a store.
//
// Endpoint: GET /api/funds?token=...
// Response: 200 OK with array of Fund (funds whose ledger table exists)
// Error: 400 invalid token, 404 when no fund matches an existing table
func (h *FundHandler) Funds(w http.ResponseWriter, r *http.Request) {
	storePath, err := h.uploads.Resolve(r.URL.Query().Get("token"))
	if err != nil {
		respondAppError(w, err)
		return
	}

	funds, err := h.fundService.SelectableFunds(storePath)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, funds)
}

// Overview handles GET requests for the per-fund snapshot across all
// selectable funds, computed concurrently with one connection per fund.
//
// Endpoint: GET /api/funds/overview?token=...
// Response: 200 OK with array of FundSnapshot in Funds table order
func (h *FundHandler) Overview(w http.ResponseWriter, r *http.Request) {
	storePath, err := h.uploads.Resolve(r.URL.Query().Get("token"))
	if err != nil {
		respondAppError(w, err)
		return
	}

	snapshots, err := h.fundService.Overview(r.Context(), storePath)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshots)
}

// Durations handles GET requests for the closed duration token set.
//
// Endpoint: GET /api/durations
// Response: 200 OK with the tokens in display order ("Total" first)
func (h *FundHandler) Durations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.Durations())
}
