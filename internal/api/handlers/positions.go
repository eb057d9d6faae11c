package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/validation"
)

// PositionHandler handles HTTP requests for derived position series and
// window summaries.
type PositionHandler struct {
	uploads         *ingest.UploadService
	positionService *service.PositionService
}

// NewPositionHandler creates a new PositionHandler with the provided dependencies.
func NewPositionHandler(uploads *ingest.UploadService, positionService *service.PositionService) *PositionHandler {
	return &PositionHandler{
		uploads:         uploads,
		positionService: positionService,
	}
}

// PositionRow is one row of a derived series as rendered at the boundary:
// ISO date, values rounded to two decimals, undefined values as null.
type PositionRow struct {
	Date        string   `json:"date"`
	Credit      float64  `json:"credit"`
	Close       float64  `json:"close"`
	CumCredit   float64  `json:"cumCredit"`
	DollarDelta *float64 `json:"dollarDelta"`
	PercDelta   *float64 `json:"percDelta"`
	Percentage  *float64 `json:"percentage"`
}

// Position handles GET requests for a fund's derived, duration-filtered series.
//
// Endpoint: GET /api/position/{fund}?token=...&duration=...
// Response: 200 OK with the filtered series; an empty ledger yields an empty
// array, not an error.
// Error: 400 bad token/duration, 404 unknown fund
func (h *PositionHandler) Position(w http.ResponseWriter, r *http.Request) {
	storePath, fund, duration, ok := h.parseSeriesRequest(w, r)
	if !ok {
		return
	}

	series, err := h.positionService.ComputeSeries(storePath, fund)
	if err != nil {
		respondAppError(w, err)
		return
	}

	filtered, err := service.FilterByDuration(series, duration)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toRows(service.RoundSeries(filtered)))
}

// Summary handles GET requests for the window summary of a (fund, duration)
// slice.
//
// Endpoint: GET /api/position/{fund}/summary?token=...&duration=...
// Response: 200 OK with WindowSummary; for an empty ledger, 200 OK with
// {"fund": ..., "empty": true}. The empty state is not an error.
func (h *PositionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	storePath, fund, duration, ok := h.parseSeriesRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.positionService.Summarize(storePath, fund, duration)
	if errors.Is(err, apperrors.ErrEmptyResult) {
		respondJSON(w, http.StatusOK, map[string]any{
			"fund":  fund,
			"empty": true,
		})
		return
	}
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// parseSeriesRequest resolves the store token, fund code and duration token
// shared by the series endpoints. On failure it writes the error response
// and returns ok=false.
func (h *PositionHandler) parseSeriesRequest(w http.ResponseWriter, r *http.Request) (storePath, fund string, duration model.Duration, ok bool) {
	storePath, err := h.uploads.Resolve(r.URL.Query().Get("token"))
	if err != nil {
		respondAppError(w, err)
		return "", "", "", false
	}

	fund = chi.URLParam(r, "fund")
	if err := validation.ValidateFundCode(fund); err != nil {
		respondAppError(w, err)
		return "", "", "", false
	}

	duration, err = validation.ValidateDurationToken(r.URL.Query().Get("duration"))
	if err != nil {
		respondAppError(w, err)
		return "", "", "", false
	}

	return storePath, fund, duration, true
}

func toRows(series []model.PositionRecord) []PositionRow {
	rows := make([]PositionRow, len(series))
	for i, rec := range series {
		rows[i] = PositionRow{
			Date:        rec.Date.Format("2006-01-02"),
			Credit:      rec.Credit,
			Close:       rec.Close,
			CumCredit:   rec.CumCredit,
			DollarDelta: rec.DollarDelta,
			PercDelta:   rec.PercDelta,
			Percentage:  rec.Percentage,
		}
	}
	return rows
}
