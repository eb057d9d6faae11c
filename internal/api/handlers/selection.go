package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/response"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
)

// SelectionHandler handles HTTP requests that resolve the active
// (fund, duration) pair from a button-group snapshot.
type SelectionHandler struct{}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler() *SelectionHandler {
	return &SelectionHandler{}
}

// ResolveSelectionRequest is the button-state snapshot sent by the display
// layer: the trigger event plus both groups' parallel state arrays.
type ResolveSelectionRequest struct {
	Trigger       model.TriggerEvent `json:"trigger"`
	FundGroup     model.GroupState   `json:"fundGroup"`
	DurationGroup model.GroupState   `json:"durationGroup"`
}

// Resolve handles POST requests that resolve a selection.
//
// Endpoint: POST /api/selection
// Response: 200 OK with SelectionState
// Error: 422 when the trigger names an unknown member
func (h *SelectionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Failed to parse request body", err.Error())
		return
	}

	selection, err := service.ResolveSelection(req.Trigger, req.FundGroup, req.DurationGroup)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, selection)
}
