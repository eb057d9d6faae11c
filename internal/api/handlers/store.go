package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/response"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/ingest"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
)

// maxUploadBytes caps uploaded ledger stores at 64 MiB.
const maxUploadBytes = 64 << 20

// StoreHandler handles HTTP requests for uploading and creating ledger
// stores. Clients receive a sealed token naming the store and pass it back
// on every data request; raw paths never cross the boundary.
type StoreHandler struct {
	uploads     *ingest.UploadService
	fundService *service.FundService
}

// NewStoreHandler creates a new StoreHandler with the provided dependencies.
func NewStoreHandler(uploads *ingest.UploadService, fundService *service.FundService) *StoreHandler {
	return &StoreHandler{
		uploads:     uploads,
		fundService: fundService,
	}
}

// StoreTokenResponse carries the token naming an uploaded or created store.
type StoreTokenResponse struct {
	Token string `json:"token"`
}

// Upload handles POST requests that upload a ledger store.
//
// Endpoint: POST /api/store (multipart, field "file", .db extension required)
// Response: 201 Created with {token}
// Error: 400 for non-.db uploads or files that are not SQLite stores
func (h *StoreHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}
	defer file.Close()

	token, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, StoreTokenResponse{Token: token})
}

// CreateStoreRequest names the funds a new empty store should track.
type CreateStoreRequest struct {
	Funds []string `json:"funds"`
}

// Create handles POST requests that create a new empty ledger store.
//
// Endpoint: POST /api/store/create with {"funds": ["VOO", ...]}
// Response: 201 Created with {token}; the store has a Funds table with one
// Active row and one empty ledger table per fund code.
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Failed to parse request body", err.Error())
		return
	}

	path, token, err := h.uploads.CreateEmpty()
	if err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.fundService.InitializeStore(path, req.Funds); err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, StoreTokenResponse{Token: token})
}
